package staff

import (
	"context"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
)

type StaffServiceImpl struct {
	db *database.DB
	staff.StaffRepository
	category.CategoryRepository
}

// Create implements staff.StaffService. New members start with the
// staff role; elevation happens through the access module.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if _, err := s.CategoryRepository.GetByID(ctx, req.CategoryID); err != nil {
		return staff.StaffResponse{}, err
	}

	created, err := s.StaffRepository.Create(ctx, staff.StaffMember{
		StaffID:     req.StaffID,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		CategoryID:  req.CategoryID,
		Email:       req.Email,
		Role:        user.RoleStaff,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements staff.StaffService.
func (s *StaffServiceImpl) GetByID(ctx context.Context, staffID string) (staff.StaffResponse, error) {
	member, err := s.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return toResponse(member), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffResponse, error) {
	members, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toResponse(member))
	}
	return responses, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.CategoryID != nil {
		if _, err := s.CategoryRepository.GetByID(ctx, *req.CategoryID); err != nil {
			return err
		}
	}

	return s.StaffRepository.Update(ctx, req)
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, staffID string) error {
	return s.StaffRepository.Delete(ctx, staffID)
}

// ListDepartments implements staff.StaffService.
func (s *StaffServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	return s.StaffRepository.ListDepartments(ctx)
}

// ListDesignations implements staff.StaffService.
func (s *StaffServiceImpl) ListDesignations(ctx context.Context) ([]string, error) {
	return s.StaffRepository.ListDesignations(ctx)
}

func toResponse(member staff.StaffMember) staff.StaffResponse {
	return staff.StaffResponse{
		StaffID:             member.StaffID,
		Name:                member.Name,
		Department:          member.Department,
		Designation:         member.Designation,
		CategoryID:          member.CategoryID,
		CategoryDescription: member.CategoryDescription,
		Email:               member.Email,
		Role:                string(member.Role),
	}
}

func NewStaffService(
	db *database.DB,
	staffRepo staff.StaffRepository,
	categoryRepo category.CategoryRepository,
) staff.StaffService {
	return &StaffServiceImpl{
		db:                 db,
		StaffRepository:    staffRepo,
		CategoryRepository: categoryRepo,
	}
}
