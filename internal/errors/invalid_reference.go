package errors

var (
	ErrCategoryReference = Conflict("Referenced category not found")
	ErrProjectReference  = Conflict("Referenced project not found")
	ErrInvalidReference  = Conflict("Referenced record does not exist")
)
