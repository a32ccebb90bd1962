package staff

import (
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
)

// StaffMember is an employee enrolled on the biometric devices. StaffID is
// the device enrollment number, not a surrogate key.
type StaffMember struct {
	StaffID     string
	Name        string
	Department  string
	Designation string
	CategoryID  string
	Email       string
	Role        user.Role
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	CategoryDescription *string
}
