package errors

var ErrInvalidJSON = Validation("invalid JSON payload")
