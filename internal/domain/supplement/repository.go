package supplement

import "context"

type Filter struct {
	Status     Status
	CategoryID *uint
	Search     string
}

type Repository interface {
	Create(ctx context.Context, s *Supplement) error
	GetByID(ctx context.Context, id uint) (*Supplement, error)
	GetBySlug(ctx context.Context, slugValue string) (*Supplement, error)
	Update(ctx context.Context, s *Supplement) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Supplement, int64, error)
}
