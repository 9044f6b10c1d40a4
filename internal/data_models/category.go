package dto

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name Optional[string] `json:"name"`
}

func (r UpdateCategoryRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name.Set {
		changes["name"] = r.Name.Column()
	}
	return changes
}
