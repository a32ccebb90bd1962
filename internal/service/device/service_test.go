package device

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/campus-mis/attendance-backend-go/internal/domain/device"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeviceRepo struct {
	devices map[string]device.Device
	nextID  int
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: make(map[string]device.Device)}
}

func (f *fakeDeviceRepo) Create(_ context.Context, dev device.Device) (device.Device, error) {
	for _, existing := range f.devices {
		if existing.IP == dev.IP {
			return device.Device{}, device.ErrDeviceIPExists
		}
	}
	f.nextID++
	dev.ID = fmt.Sprintf("dev-%d", f.nextID)
	f.devices[dev.ID] = dev
	return dev, nil
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id string) (device.Device, error) {
	dev, ok := f.devices[id]
	if !ok {
		return device.Device{}, device.ErrDeviceNotFound
	}
	return dev, nil
}

func (f *fakeDeviceRepo) List(_ context.Context) ([]device.Device, error) { return nil, nil }
func (f *fakeDeviceRepo) Update(_ context.Context, _ device.UpdateDeviceRequest) error {
	return nil
}
func (f *fakeDeviceRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeDeviceRepo) ToggleMaintenance(_ context.Context, id string) (bool, error) {
	dev, ok := f.devices[id]
	if !ok {
		return false, device.ErrDeviceNotFound
	}
	dev.Maintenance = !dev.Maintenance
	f.devices[id] = dev
	return dev.Maintenance, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, m staff.StaffMember) (staff.StaffMember, error) {
	return m, nil
}
func (f *fakeStaffRepo) GetByID(_ context.Context, staffID string) (staff.StaffMember, error) {
	m, ok := f.members[staffID]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}
func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error { return nil }
func (f *fakeStaffRepo) Delete(_ context.Context, _ string) error                  { return nil }
func (f *fakeStaffRepo) Exists(_ context.Context, staffID string) (bool, error) {
	_, ok := f.members[staffID]
	return ok, nil
}
func (f *fakeStaffRepo) ListDepartments(_ context.Context) ([]string, error)  { return nil, nil }
func (f *fakeStaffRepo) ListDesignations(_ context.Context) ([]string, error) { return nil, nil }

type fakeRunner struct {
	configured bool
	calls      [][]string
	err        error
}

func (f *fakeRunner) Run(_ context.Context, args ...string) error {
	f.calls = append(f.calls, args)
	return f.err
}

func (f *fakeRunner) Configured() bool { return f.configured }

func newTestService(runner *fakeRunner) (device.DeviceService, *fakeDeviceRepo) {
	repo := newFakeDeviceRepo()
	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"1042": {StaffID: "1042", Name: "Asha Verma"},
	}}
	return NewDeviceService(nil, runner, repo, staffRepo), repo
}

func TestDeviceService_Create_DuplicateIP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeRunner{configured: true})

	req := device.CreateDeviceRequest{Name: "Gate A", IP: "10.0.0.20", Port: 4370, Location: "Main gate"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req.Name = "Gate B"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, device.ErrDeviceIPExists)
}

func TestDeviceService_ToggleMaintenance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeRunner{configured: true})

	created, err := svc.Create(ctx, device.CreateDeviceRequest{
		Name: "Gate A", IP: "10.0.0.20", Port: 4370,
	})
	require.NoError(t, err)

	on, err := svc.ToggleMaintenance(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleMaintenance(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, off)
}

func TestDeviceService_ProvisionStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	runner := &fakeRunner{configured: true}
	svc, _ := newTestService(runner)

	err := svc.ProvisionStaff(ctx, device.ProvisionStaffRequest{StaffID: "1042"})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"provision", "1042", "Asha Verma"}, runner.calls[0])
}

func TestDeviceService_ProvisionStaff_NotConfigured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeRunner{configured: false})

	err := svc.ProvisionStaff(ctx, device.ProvisionStaffRequest{StaffID: "1042"})
	assert.ErrorIs(t, err, device.ErrSyncNotConfigured)
}

func TestDeviceService_ProvisionStaff_ScriptFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	runner := &fakeRunner{configured: true, err: errors.New("exit status 2")}
	svc, _ := newTestService(runner)

	err := svc.ProvisionStaff(ctx, device.ProvisionStaffRequest{StaffID: "1042"})
	assert.ErrorIs(t, err, device.ErrProvisionFailed)
}

func TestDeviceService_ProvisionStaff_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeRunner{configured: true})

	err := svc.ProvisionStaff(ctx, device.ProvisionStaffRequest{StaffID: "9999"})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
