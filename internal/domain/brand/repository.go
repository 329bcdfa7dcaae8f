package brand

import "context"

type Repository interface {
	Create(ctx context.Context, b *Brand) error
	GetByID(ctx context.Context, id uint) (*Brand, error)
	GetBySlug(ctx context.Context, slugValue string) (*Brand, error)
	Update(ctx context.Context, b *Brand) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*Brand, int64, error)
}
