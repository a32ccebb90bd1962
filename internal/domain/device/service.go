package device

import "context"

type DeviceService interface {
	Create(ctx context.Context, req CreateDeviceRequest) (DeviceResponse, error)
	GetByID(ctx context.Context, id string) (DeviceResponse, error)
	List(ctx context.Context) ([]DeviceResponse, error)
	Update(ctx context.Context, req UpdateDeviceRequest) error
	Delete(ctx context.Context, id string) error

	// ToggleMaintenance flips maintenance mode and returns the new state
	ToggleMaintenance(ctx context.Context, id string) (bool, error)

	// ProvisionStaff pushes one staff member's credentials to the devices
	// by invoking the configured sync script and waiting for it to finish
	ProvisionStaff(ctx context.Context, req ProvisionStaffRequest) error
}
