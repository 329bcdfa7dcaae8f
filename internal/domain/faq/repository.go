package faq

import "context"

type Filter struct {
	CategoryID    *uint
	PublishedOnly bool
}

type Repository interface {
	Create(ctx context.Context, f *FAQ) error
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	Update(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*FAQ, error)
}
