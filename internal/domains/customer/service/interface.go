package service

import (
	"context"

	"bookstore-backoffice/internal/domains/customer/model"
)

// ServiceInterface covers customer management and the create-or-get
// resolution the order workflow relies on.
type ServiceInterface interface {
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *model.UpdateCustomerRequest) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, filter *model.CustomerFilter) ([]model.Customer, int, error)
	ListActiveCustomers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, keyword string) ([]model.Customer, error)
	ListCustomersByCity(ctx context.Context, city string) ([]model.Customer, error)
	ListCustomersByCountry(ctx context.Context, country string) ([]model.Customer, error)
	DeactivateCustomer(ctx context.Context, id int64) error
	ToggleCustomerStatus(ctx context.Context, id int64) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error

	// CreateOrGet resolves incoming order contact details to exactly one
	// customer row, creating it if nobody matches.
	CreateOrGet(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
}
