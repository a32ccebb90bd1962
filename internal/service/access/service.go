package access

import (
	"context"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/access"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
)

type AccessServiceImpl struct {
	db *database.DB
	access.AccessRepository
}

// CreateRole implements access.AccessService.
func (s *AccessServiceImpl) CreateRole(ctx context.Context, req access.CreateRoleRequest) (access.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return access.RoleResponse{}, err
	}

	created, err := s.AccessRepository.CreateRole(ctx, access.AccessRole{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return access.RoleResponse{}, err
	}

	return toRoleResponse(created), nil
}

// ListRoles implements access.AccessService.
func (s *AccessServiceImpl) ListRoles(ctx context.Context) ([]access.RoleResponse, error) {
	roles, err := s.AccessRepository.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]access.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, toRoleResponse(role))
	}
	return responses, nil
}

// UpdateRole implements access.AccessService.
func (s *AccessServiceImpl) UpdateRole(ctx context.Context, req access.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.AccessRepository.UpdateRole(ctx, req)
}

// DeleteRole implements access.AccessService.
func (s *AccessServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.AccessRepository.DeleteRole(ctx, id)
}

// UpsertPageRule implements access.AccessService.
func (s *AccessServiceImpl) UpsertPageRule(ctx context.Context, req access.UpsertPageRuleRequest) (access.PageRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return access.PageRuleResponse{}, err
	}

	rule, err := s.AccessRepository.UpsertPageRule(ctx, access.PageRule{
		Page:  req.Page,
		Roles: req.Roles,
	})
	if err != nil {
		return access.PageRuleResponse{}, err
	}

	return toPageRuleResponse(rule), nil
}

// ListPageRules implements access.AccessService.
func (s *AccessServiceImpl) ListPageRules(ctx context.Context) ([]access.PageRuleResponse, error) {
	rules, err := s.AccessRepository.ListPageRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list page rules: %w", err)
	}

	responses := make([]access.PageRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toPageRuleResponse(rule))
	}
	return responses, nil
}

// DeletePageRule implements access.AccessService.
func (s *AccessServiceImpl) DeletePageRule(ctx context.Context, id string) error {
	return s.AccessRepository.DeletePageRule(ctx, id)
}

// BulkUpdateStaffRoles implements access.AccessService. The repository
// applies the whole batch in one transaction.
func (s *AccessServiceImpl) BulkUpdateStaffRoles(ctx context.Context, req access.BulkRoleUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.AccessRepository.BulkUpdateStaffRoles(ctx, req.Updates); err != nil {
		return fmt.Errorf("failed to update staff roles: %w", err)
	}

	return nil
}

// ListHODDepartments implements access.AccessService.
func (s *AccessServiceImpl) ListHODDepartments(ctx context.Context, staffID string) ([]string, error) {
	return s.AccessRepository.ListHODDepartments(ctx, staffID)
}

// SetHODDepartments implements access.AccessService.
func (s *AccessServiceImpl) SetHODDepartments(ctx context.Context, staffID string, departments []string) error {
	return s.AccessRepository.SetHODDepartments(ctx, staffID, departments)
}

func toRoleResponse(role access.AccessRole) access.RoleResponse {
	return access.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
	}
}

func toPageRuleResponse(rule access.PageRule) access.PageRuleResponse {
	return access.PageRuleResponse{
		ID:    rule.ID,
		Page:  rule.Page,
		Roles: rule.Roles,
	}
}

func NewAccessService(
	db *database.DB,
	accessRepo access.AccessRepository,
) access.AccessService {
	return &AccessServiceImpl{
		db:               db,
		AccessRepository: accessRepo,
	}
}
