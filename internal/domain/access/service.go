package access

import "context"

type AccessService interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error

	UpsertPageRule(ctx context.Context, req UpsertPageRuleRequest) (PageRuleResponse, error)
	ListPageRules(ctx context.Context) ([]PageRuleResponse, error)
	DeletePageRule(ctx context.Context, id string) error

	BulkUpdateStaffRoles(ctx context.Context, req BulkRoleUpdateRequest) error

	ListHODDepartments(ctx context.Context, staffID string) ([]string, error)
	SetHODDepartments(ctx context.Context, staffID string, departments []string) error
}
