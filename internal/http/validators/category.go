package validators

import (
	"strings"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
)

func ValidateCreateCategoryRequest(r *dto.CreateCategoryRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	return nil
}

func ValidateUpdateCategoryRequest(r *dto.UpdateCategoryRequest) error {
	return requiredString("name", r.Name)
}
