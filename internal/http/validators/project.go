package validators

import (
	"strings"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	return nil
}

func ValidateUpdateProjectRequest(r *dto.UpdateProjectRequest) error {
	if err := requiredString("name", r.Name); err != nil {
		return err
	}
	return notNull("progress", r.Progress)
}
