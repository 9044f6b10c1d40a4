package validators

import (
	"net/mail"
	"strings"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
	"todo-list-api.com/todo-list-api/internal/security"
)

var errPasswordTooLong = apperr.Validation("password must be at most 72 bytes")

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return apperr.Validation("email is required")
	}
	if !validEmail(r.Email) {
		return apperr.Validation("email must be a valid email address")
	}
	r.Email = normalizeEmail(r.Email)
	if r.Password == "" {
		return apperr.Validation("password is required")
	}
	if len(r.Password) > security.MaxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}

func ValidateUpdateUserRequest(r *dto.UpdateUserRequest) error {
	if r.Email.Set {
		if r.Email.Null {
			return apperr.Validation("email must not be null")
		}
		r.Email.Value = strings.TrimSpace(r.Email.Value)
		if !validEmail(r.Email.Value) {
			return apperr.Validation("email must be a valid email address")
		}
		r.Email.Value = normalizeEmail(r.Email.Value)
	}
	if r.Password.Set {
		if r.Password.Null || r.Password.Value == "" {
			return apperr.Validation("password must not be empty")
		}
		if len(r.Password.Value) > security.MaxPasswordBytes {
			return errPasswordTooLong
		}
	}
	return nil
}

// validEmail accepts a bare address only, no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, ".")
}

// normalizeEmail lowercases the domain; the local part is case sensitive.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
