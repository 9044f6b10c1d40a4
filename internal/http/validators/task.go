package validators

import (
	"strings"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
)

// ValidateCreateTaskRequest also rewrites category_id and project_id to
// their canonical form so lookups match stored ids.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperr.Validation("title is required")
	}
	if r.CategoryID != nil {
		id, err := uuidField("category_id", *r.CategoryID)
		if err != nil {
			return err
		}
		r.CategoryID = &id
	}
	if r.ProjectID != nil {
		id, err := uuidField("project_id", *r.ProjectID)
		if err != nil {
			return err
		}
		r.ProjectID = &id
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if err := requiredString("title", r.Title); err != nil {
		return err
	}
	if err := notNull("is_completed", r.IsCompleted); err != nil {
		return err
	}
	if err := notNull("priority", r.Priority); err != nil {
		return err
	}
	if r.CategoryID.HasValue() {
		id, err := uuidField("category_id", r.CategoryID.Value)
		if err != nil {
			return err
		}
		r.CategoryID.Value = id
	}
	if r.ProjectID.HasValue() {
		id, err := uuidField("project_id", r.ProjectID.Value)
		if err != nil {
			return err
		}
		r.ProjectID.Value = id
	}
	return nil
}
