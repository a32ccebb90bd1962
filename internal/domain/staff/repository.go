package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, member StaffMember) (StaffMember, error)
	GetByID(ctx context.Context, staffID string) (StaffMember, error)
	List(ctx context.Context, filter StaffFilter) ([]StaffMember, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	Delete(ctx context.Context, staffID string) error

	// Exists is used by the punch importer to skip unknown enrollment numbers
	Exists(ctx context.Context, staffID string) (bool, error)

	// ListDepartments returns distinct department names ordered ascending
	ListDepartments(ctx context.Context) ([]string, error)

	// ListDesignations returns distinct designation names ordered ascending
	ListDesignations(ctx context.Context) ([]string, error)
}
