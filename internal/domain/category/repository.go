package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, kind Kind, slugValue string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	ListByKind(ctx context.Context, kind Kind) ([]*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
