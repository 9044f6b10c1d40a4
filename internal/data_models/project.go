package dto

import "time"

type CreateProjectRequest struct {
	Name     string     `json:"name"`
	DueDate  *time.Time `json:"due_date"`
	Progress int        `json:"progress"`
}

type UpdateProjectRequest struct {
	Name     Optional[string]    `json:"name"`
	DueDate  Optional[time.Time] `json:"due_date"`
	Progress Optional[int]       `json:"progress"`
}

func (r UpdateProjectRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name.Set {
		changes["name"] = r.Name.Column()
	}
	if r.DueDate.Set {
		changes["due_date"] = r.DueDate.Column()
	}
	if r.Progress.Set {
		changes["progress"] = r.Progress.Column()
	}
	return changes
}
