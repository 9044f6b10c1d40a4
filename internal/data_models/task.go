package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority"`
	CategoryID  *string    `json:"category_id"`
	ProjectID   *string    `json:"project_id"`
}

type UpdateTaskRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	IsCompleted Optional[bool]      `json:"is_completed"`
	DueDate     Optional[time.Time] `json:"due_date"`
	Priority    Optional[int]       `json:"priority"`
	CategoryID  Optional[string]    `json:"category_id"`
	ProjectID   Optional[string]    `json:"project_id"`
}

// Changes maps the fields present in the payload to their columns.
func (r UpdateTaskRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Title.Set {
		changes["title"] = r.Title.Column()
	}
	if r.Description.Set {
		changes["description"] = r.Description.Column()
	}
	if r.IsCompleted.Set {
		changes["is_completed"] = r.IsCompleted.Column()
	}
	if r.DueDate.Set {
		changes["due_date"] = r.DueDate.Column()
	}
	if r.Priority.Set {
		changes["priority"] = r.Priority.Column()
	}
	if r.CategoryID.Set {
		changes["category_id"] = r.CategoryID.Column()
	}
	if r.ProjectID.Set {
		changes["project_id"] = r.ProjectID.Column()
	}
	return changes
}
