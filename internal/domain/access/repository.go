package access

import "context"

type AccessRepository interface {
	// Role CRUD
	CreateRole(ctx context.Context, role AccessRole) (AccessRole, error)
	GetRole(ctx context.Context, id string) (AccessRole, error)
	ListRoles(ctx context.Context) ([]AccessRole, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error

	// Page access rules
	UpsertPageRule(ctx context.Context, rule PageRule) (PageRule, error)
	ListPageRules(ctx context.Context) ([]PageRule, error)
	DeletePageRule(ctx context.Context, id string) error

	// BulkUpdateStaffRoles applies every update in one transaction;
	// any failure rolls the whole batch back
	BulkUpdateStaffRoles(ctx context.Context, updates []StaffRoleUpdate) error

	// HOD department scoping
	ListHODDepartments(ctx context.Context, staffID string) ([]string, error)
	SetHODDepartments(ctx context.Context, staffID string, departments []string) error
}
