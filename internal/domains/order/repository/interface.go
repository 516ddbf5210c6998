package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookstore-backoffice/internal/domains/order/model"
)

// RepositoryInterface is the order store contract. Creation runs inside a
// caller-managed transaction so the order, its items and any stock
// adjustments commit together.
type RepositoryInterface interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)

	CreateOrderTx(ctx context.Context, tx pgx.Tx, o *model.Order) error
	CreateOrderItemsTx(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) error

	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}
