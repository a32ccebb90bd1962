package exemption

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExemptionRepo struct {
	rows   map[string]exemption.Exemption
	nextID int
}

func newFakeExemptionRepo() *fakeExemptionRepo {
	return &fakeExemptionRepo{rows: make(map[string]exemption.Exemption)}
}

func (f *fakeExemptionRepo) Create(_ context.Context, ex exemption.Exemption) (exemption.Exemption, error) {
	f.nextID++
	ex.ID = fmt.Sprintf("ex-%d", f.nextID)
	ex.CreatedAt = time.Now()
	f.rows[ex.ID] = ex
	return ex, nil
}

func (f *fakeExemptionRepo) HasActiveDuplicate(_ context.Context, staffID string, date time.Time, exType, session string, startTime, endTime *string) (bool, error) {
	for _, ex := range f.rows {
		if ex.Status == exemption.StatusRejected {
			continue
		}
		if ex.StaffID == staffID && ex.Date.Equal(date) && ex.Type == exType && ex.Session == session &&
			strPtrEq(ex.StartTime, startTime) && strPtrEq(ex.EndTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (f *fakeExemptionRepo) GetByID(_ context.Context, id string) (exemption.Exemption, error) {
	ex, ok := f.rows[id]
	if !ok {
		return exemption.Exemption{}, exemption.ErrExemptionNotFound
	}
	return ex, nil
}

func (f *fakeExemptionRepo) UpdateStatus(_ context.Context, id string, status string, reviewerID string) error {
	ex, ok := f.rows[id]
	if !ok {
		return exemption.ErrExemptionNotFound
	}
	if ex.Status != exemption.StatusPending {
		return exemption.ErrExemptionAlreadyProcessed
	}
	now := time.Now()
	ex.Status = status
	ex.ReviewedBy = &reviewerID
	ex.ReviewedAt = &now
	f.rows[id] = ex
	return nil
}

func (f *fakeExemptionRepo) List(_ context.Context, filter exemption.ExemptionFilter) ([]exemption.Exemption, error) {
	var out []exemption.Exemption
	for _, ex := range f.rows {
		if filter.StaffID != nil && ex.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && ex.Status != *filter.Status {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}

func (f *fakeExemptionRepo) ListApprovedForDate(_ context.Context, staffID string, date time.Time) ([]exemption.Exemption, error) {
	var out []exemption.Exemption
	for _, ex := range f.rows {
		if ex.StaffID == staffID && ex.Date.Equal(date) && ex.Status == exemption.StatusApproved {
			out = append(out, ex)
		}
	}
	return out, nil
}

type fakeStaffRepo struct {
	known map[string]bool
}

func (f *fakeStaffRepo) Create(_ context.Context, m staff.StaffMember) (staff.StaffMember, error) {
	return m, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, staffID string) (staff.StaffMember, error) {
	if !f.known[staffID] {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return staff.StaffMember{StaffID: staffID}, nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error { return nil }
func (f *fakeStaffRepo) Delete(_ context.Context, _ string) error                  { return nil }
func (f *fakeStaffRepo) Exists(_ context.Context, staffID string) (bool, error) {
	return f.known[staffID], nil
}
func (f *fakeStaffRepo) ListDepartments(_ context.Context) ([]string, error)  { return nil, nil }
func (f *fakeStaffRepo) ListDesignations(_ context.Context) ([]string, error) { return nil, nil }

func newTestService() (exemption.ExemptionService, *fakeExemptionRepo) {
	repo := newFakeExemptionRepo()
	svc := NewExemptionService(nil, repo, &fakeStaffRepo{known: map[string]bool{"1042": true}})
	return svc, repo
}

func validRequest() exemption.ApplyExemptionRequest {
	return exemption.ApplyExemptionRequest{
		StaffID:  "1042",
		Type:     "official_duty",
		Sessions: []string{"morning"},
		Date:     "2026-09-01",
		Reason:   "University entrance exam duty",
	}
}

func TestExemptionService_Apply_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Apply(ctx, validRequest())
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, exemption.StatusPending, created[0].Status)
	assert.Equal(t, "morning", created[0].Session)
}

func TestExemptionService_Apply_OneRowPerSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	req := validRequest()
	req.Sessions = []string{"morning", "afternoon"}

	created, err := svc.Apply(ctx, req)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, repo.rows, 2)
}

func TestExemptionService_Apply_DuplicateWhilePending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Apply(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Apply(ctx, validRequest())
	assert.ErrorIs(t, err, exemption.ErrDuplicateExemption)
}

func TestExemptionService_Apply_RejectedAllowsResubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Apply(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, exemption.ReviewExemptionRequest{
		ID:         created[0].ID,
		ReviewerID: "admin-1",
	}))

	_, err = svc.Apply(ctx, validRequest())
	assert.NoError(t, err)
}

func TestExemptionService_Apply_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	req := validRequest()
	req.StaffID = "9999"
	_, err := svc.Apply(ctx, req)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestExemptionService_Review_TerminalStateImmutable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Apply(ctx, validRequest())
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, svc.Approve(ctx, exemption.ReviewExemptionRequest{ID: id, ReviewerID: "admin-1"}))

	err = svc.Reject(ctx, exemption.ReviewExemptionRequest{ID: id, ReviewerID: "admin-1"})
	assert.ErrorIs(t, err, exemption.ErrExemptionAlreadyProcessed)

	err = svc.Approve(ctx, exemption.ReviewExemptionRequest{ID: id, ReviewerID: "admin-2"})
	assert.ErrorIs(t, err, exemption.ErrExemptionAlreadyProcessed)
}

func TestExemptionService_Approve_RecordsReviewer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Apply(ctx, validRequest())
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, svc.Approve(ctx, exemption.ReviewExemptionRequest{ID: id, ReviewerID: "admin-1"}))

	stored := repo.rows[id]
	assert.Equal(t, exemption.StatusApproved, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, "admin-1", *stored.ReviewedBy)
	assert.NotNil(t, stored.ReviewedAt)
}
