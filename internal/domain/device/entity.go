package device

import "time"

// Device is one biometric terminal. Maintenance mode excludes a device
// from provisioning runs without deleting its configuration.
type Device struct {
	ID          string
	Name        string
	IP          string
	Port        int
	Location    string
	Maintenance bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
