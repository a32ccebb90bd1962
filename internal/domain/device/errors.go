package device

import "errors"

var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrDeviceIPExists    = errors.New("a device with this IP address already exists")
	ErrProvisionFailed   = errors.New("device provisioning script failed")
	ErrSyncNotConfigured = errors.New("device sync script is not configured")
)
