package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindStorage    Kind = "storage"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func newException(kind Kind, message string) *Exception {
	return &Exception{Kind: kind, Message: message, StatusCode: statusFor(kind)}
}

func Validation(message string) *Exception {
	return newException(KindValidation, message)
}

func NotFound(message string) *Exception {
	return newException(KindNotFound, message)
}

func Conflict(message string) *Exception {
	return newException(KindConflict, message)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf reports the kind of err; anything unclassified is a storage failure.
func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}
