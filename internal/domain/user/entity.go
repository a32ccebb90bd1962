package user

import "time"

// Role replaces the numeric access codes used on the legacy admin panel
// (10 = admin, 5 = HOD, ...) with named variants.
type Role string

const (
	RoleAdmin Role = "admin" // System administrator - full access
	RoleHR    Role = "hr"    // HR office - review flags, exemptions, reports
	RoleHOD   Role = "hod"   // Head of department - department-scoped reports
	RoleStaff Role = "staff" // Regular staff member
)

// ParseRole maps the legacy numeric access codes still stored on older
// staff rows to named roles. Unknown codes degrade to staff.
func ParseRole(code int) Role {
	switch code {
	case 10:
		return RoleAdmin
	case 7:
		return RoleHR
	case 5:
		return RoleHOD
	default:
		return RoleStaff
	}
}

type User struct {
	ID              string
	StaffID         string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is a system administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if user can act on flags and exemptions
func (u *User) CanReview() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}
