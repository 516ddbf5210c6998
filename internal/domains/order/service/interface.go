package service

import (
	"context"

	"bookstore-backoffice/internal/domains/order/model"
)

// ServiceInterface covers order intake and back-office order management.
type ServiceInterface interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}
