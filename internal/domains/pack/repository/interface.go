package repository

import (
	"context"

	"bookstore-backoffice/internal/domains/pack/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Pack) error
	Update(ctx context.Context, p *model.Pack) error
	GetByID(ctx context.Context, id int64) (*model.Pack, error)

	ListAll(ctx context.Context) ([]model.Pack, error)
	ListActive(ctx context.Context) ([]model.Pack, error)
	ListFeatured(ctx context.Context) ([]model.Pack, error)
	ListByCategory(ctx context.Context, category string) ([]model.Pack, error)
	ListCategories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, keyword string) ([]model.Pack, error)

	SoftDelete(ctx context.Context, id int64) error
	ToggleFeatured(ctx context.Context, id int64) (*model.Pack, error)
}
