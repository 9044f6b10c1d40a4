package errors

var ErrUserNotFound = NotFound("User not found")
