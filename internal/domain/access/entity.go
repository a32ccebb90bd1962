package access

import "time"

// AccessRole is an assignable role definition shown in the admin panel.
type AccessRole struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PageRule grants a set of roles access to one frontend page path.
type PageRule struct {
	ID        string
	Page      string
	Roles     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HODDepartmentAccess scopes a head of department to the departments
// whose reports they may view.
type HODDepartmentAccess struct {
	StaffID    string
	Department string
}
