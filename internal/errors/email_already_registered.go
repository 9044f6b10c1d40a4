package errors

var ErrEmailAlreadyRegistered = Conflict("Email already registered")
