package category

import "errors"

var (
	ErrCategoryNotFound          = errors.New("shift category not found")
	ErrCategoryDescriptionExists = errors.New("shift category with this description already exists")
	ErrCategoryInUse             = errors.New("shift category is still referenced by staff")
)
