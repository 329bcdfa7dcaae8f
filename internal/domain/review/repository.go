package review

import "context"

type Filter struct {
	Status  Status
	BrandID *uint
	Search  string
}

type Repository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	GetBySlug(ctx context.Context, slugValue string) (*Review, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Review, int64, error)
}
