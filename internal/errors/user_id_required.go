package errors

var (
	ErrUserIDRequired = Validation("user_id is required")
	ErrInvalidUserID  = Validation("user_id must be a valid UUID")
)
