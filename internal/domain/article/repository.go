package article

import "context"

// Filter narrows List queries. Zero values mean "no constraint".
type Filter struct {
	Status     Status
	CategoryID *uint
	AuthorID   *uint
	Search     string
}

type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	GetBySlug(ctx context.Context, slugValue string) (*Article, error)
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Article, int64, error)
}
