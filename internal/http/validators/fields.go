package validators

import (
	"strings"

	"github.com/google/uuid"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
)

func requiredString(field string, v dto.Optional[string]) error {
	if v.Set && (v.Null || strings.TrimSpace(v.Value) == "") {
		return apperr.Validation(field + " must not be empty")
	}
	return nil
}

func notNull[T any](field string, v dto.Optional[T]) error {
	if v.Set && v.Null {
		return apperr.Validation(field + " must not be null")
	}
	return nil
}

// uuidField returns value in canonical lowercase hyphenated form.
func uuidField(field, value string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", apperr.Validation(field + " must be a valid UUID")
	}
	return id.String(), nil
}
