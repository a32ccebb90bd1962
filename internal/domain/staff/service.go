package staff

import "context"

type StaffService interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetByID(ctx context.Context, staffID string) (StaffResponse, error)
	List(ctx context.Context, filter StaffFilter) ([]StaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	Delete(ctx context.Context, staffID string) error

	ListDepartments(ctx context.Context) ([]string, error)
	ListDesignations(ctx context.Context) ([]string, error)
}
