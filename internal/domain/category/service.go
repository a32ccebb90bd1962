package category

import "context"

type CategoryService interface {
	Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	GetByID(ctx context.Context, id string) (CategoryResponse, error)
	List(ctx context.Context) ([]CategoryResponse, error)
	Update(ctx context.Context, req UpdateCategoryRequest) error
	Delete(ctx context.Context, id string) error
}
