package device

import "context"

type DeviceRepository interface {
	Create(ctx context.Context, dev Device) (Device, error)
	GetByID(ctx context.Context, id string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, req UpdateDeviceRequest) error
	Delete(ctx context.Context, id string) error

	// ToggleMaintenance flips the maintenance flag and returns the new value
	ToggleMaintenance(ctx context.Context, id string) (bool, error)
}
