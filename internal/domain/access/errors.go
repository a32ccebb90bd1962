package access

import "errors"

var (
	ErrRoleNotFound   = errors.New("access role not found")
	ErrRoleNameExists = errors.New("access role with this name already exists")
	ErrPageNotFound   = errors.New("page access rule not found")
	ErrPageExists     = errors.New("page access rule for this path already exists")
)
