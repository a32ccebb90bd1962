package device

import (
	"context"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/device"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/devicesync"
)

type DeviceServiceImpl struct {
	db     *database.DB
	runner devicesync.Runner
	device.DeviceRepository
	staff.StaffRepository
}

// Create implements device.DeviceService. The IP uniqueness guarantee
// comes from the repository insert itself.
func (s *DeviceServiceImpl) Create(ctx context.Context, req device.CreateDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	created, err := s.DeviceRepository.Create(ctx, device.Device{
		Name:     req.Name,
		IP:       req.IP,
		Port:     req.Port,
		Location: req.Location,
	})
	if err != nil {
		return device.DeviceResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements device.DeviceService.
func (s *DeviceServiceImpl) GetByID(ctx context.Context, id string) (device.DeviceResponse, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}
	return toResponse(dev), nil
}

// List implements device.DeviceService.
func (s *DeviceServiceImpl) List(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		responses = append(responses, toResponse(dev))
	}
	return responses, nil
}

// Update implements device.DeviceService.
func (s *DeviceServiceImpl) Update(ctx context.Context, req device.UpdateDeviceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.DeviceRepository.Update(ctx, req)
}

// Delete implements device.DeviceService.
func (s *DeviceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.DeviceRepository.Delete(ctx, id)
}

// ToggleMaintenance implements device.DeviceService.
func (s *DeviceServiceImpl) ToggleMaintenance(ctx context.Context, id string) (bool, error) {
	maintenance, err := s.DeviceRepository.ToggleMaintenance(ctx, id)
	if err != nil {
		return false, err
	}
	return maintenance, nil
}

// ProvisionStaff implements device.DeviceService. The sync script is run
// synchronously; the HTTP caller waits for the push to finish.
func (s *DeviceServiceImpl) ProvisionStaff(ctx context.Context, req device.ProvisionStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	member, err := s.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return err
	}

	if !s.runner.Configured() {
		return device.ErrSyncNotConfigured
	}

	name := req.Name
	if name == "" {
		name = member.Name
	}

	if err := s.runner.Run(ctx, "provision", member.StaffID, name); err != nil {
		return fmt.Errorf("%w: %v", device.ErrProvisionFailed, err)
	}

	return nil
}

func toResponse(dev device.Device) device.DeviceResponse {
	return device.DeviceResponse{
		ID:          dev.ID,
		Name:        dev.Name,
		IP:          dev.IP,
		Port:        dev.Port,
		Location:    dev.Location,
		Maintenance: dev.Maintenance,
	}
}

func NewDeviceService(
	db *database.DB,
	runner devicesync.Runner,
	deviceRepo device.DeviceRepository,
	staffRepo staff.StaffRepository,
) device.DeviceService {
	return &DeviceServiceImpl{
		db:               db,
		runner:           runner,
		DeviceRepository: deviceRepo,
		StaffRepository:  staffRepo,
	}
}
