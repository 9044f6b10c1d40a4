package errors

var ErrProjectNotFound = NotFound("Project not found")
