package category

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, cat ShiftCategory) (ShiftCategory, error)
	GetByID(ctx context.Context, id string) (ShiftCategory, error)
	List(ctx context.Context) ([]ShiftCategory, error)
	Update(ctx context.Context, req UpdateCategoryRequest) error

	// Delete refuses to remove a category still referenced by staff
	Delete(ctx context.Context, id string) error
}
