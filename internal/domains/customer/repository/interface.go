package repository

import (
	"context"

	"bookstore-backoffice/internal/domains/customer/model"
)

// RepositoryInterface is the customer store contract.
type RepositoryInterface interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)

	List(ctx context.Context, filter *model.CustomerFilter) ([]model.Customer, int, error)
	ListActive(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, keyword string) ([]model.Customer, error)
	ListByCity(ctx context.Context, city string) ([]model.Customer, error)
	ListByCountry(ctx context.Context, country string) ([]model.Customer, error)

	SoftDelete(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) (*model.Customer, error)
	PermanentDelete(ctx context.Context, id int64) error
}
