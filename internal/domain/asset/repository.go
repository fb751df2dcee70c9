package asset

import "context"

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id uint64) (*Asset, error)
	Save(ctx context.Context, a *Asset) error
}
