package staff

import "errors"

var (
	ErrStaffNotFound  = errors.New("staff member not found")
	ErrStaffIDExists  = errors.New("staff id already enrolled")
	ErrEmailExists    = errors.New("email already registered")
	ErrUnknownStaffID = errors.New("staff id not present in staff table")
)
