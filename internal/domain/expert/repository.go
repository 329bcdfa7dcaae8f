package expert

import "context"

type Repository interface {
	Create(ctx context.Context, e *Expert) error
	GetByID(ctx context.Context, id uint) (*Expert, error)
	GetBySlug(ctx context.Context, slugValue string) (*Expert, error)
	Update(ctx context.Context, e *Expert) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*Expert, int64, error)
}
