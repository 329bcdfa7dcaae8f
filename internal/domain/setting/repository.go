package setting

import "context"

type Repository interface {
	Upsert(ctx context.Context, s *Setting) error
	GetByKey(ctx context.Context, key string) (*Setting, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, publicOnly bool) ([]*Setting, error)
}
