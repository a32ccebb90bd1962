package master

import (
	"context"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
)

type CategoryServiceImpl struct {
	db *database.DB
	category.CategoryRepository
}

// Create implements category.CategoryService. Description uniqueness is
// enforced by the repository's insert, not a prior existence check.
func (s *CategoryServiceImpl) Create(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}

	created, err := s.CategoryRepository.Create(ctx, category.ShiftCategory{
		Description:           req.Description,
		InTime:                req.InTime,
		BreakInTime:           req.BreakInTime,
		BreakOutTime:          req.BreakOutTime,
		OutTime:               req.OutTime,
		BreakAllowanceMinutes: req.BreakAllowanceMinutes,
		GraceMinutes:          req.GraceMinutes,
	})
	if err != nil {
		return category.CategoryResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements category.CategoryService.
func (s *CategoryServiceImpl) GetByID(ctx context.Context, id string) (category.CategoryResponse, error) {
	cat, err := s.CategoryRepository.GetByID(ctx, id)
	if err != nil {
		return category.CategoryResponse{}, err
	}
	return toResponse(cat), nil
}

// List implements category.CategoryService.
func (s *CategoryServiceImpl) List(ctx context.Context) ([]category.CategoryResponse, error) {
	cats, err := s.CategoryRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]category.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		responses = append(responses, toResponse(cat))
	}
	return responses, nil
}

// Update implements category.CategoryService.
func (s *CategoryServiceImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.CategoryRepository.Update(ctx, req)
}

// Delete implements category.CategoryService.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.CategoryRepository.Delete(ctx, id)
}

func toResponse(cat category.ShiftCategory) category.CategoryResponse {
	return category.CategoryResponse{
		ID:                    cat.ID,
		Description:           cat.Description,
		InTime:                cat.InTime,
		BreakInTime:           cat.BreakInTime,
		BreakOutTime:          cat.BreakOutTime,
		OutTime:               cat.OutTime,
		BreakAllowanceMinutes: cat.BreakAllowanceMinutes,
		GraceMinutes:          cat.GraceMinutes,
	}
}

func NewCategoryService(
	db *database.DB,
	categoryRepo category.CategoryRepository,
) category.CategoryService {
	return &CategoryServiceImpl{
		db:                 db,
		CategoryRepository: categoryRepo,
	}
}
