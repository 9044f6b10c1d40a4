package errors

var ErrCategoryNotFound = NotFound("Category not found")
