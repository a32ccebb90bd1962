package exemption

import "time"

// Status transitions are pending -> approved or pending -> rejected;
// terminal states are immutable.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Sessions an exemption can cover.
const (
	SessionMorning   = "morning"
	SessionAfternoon = "afternoon"
	SessionFullDay   = "full_day"
)

// Exemption is a pre-approved deviation from the normal schedule for one
// date and session (morning/afternoon/full day).
type Exemption struct {
	ID         string
	StaffID    string
	Type       string
	Session    string
	Date       time.Time
	StartTime  *string
	EndTime    *string
	Reason     string
	Status     string
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time

	// Join fields
	StaffName *string
}
