package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"bookstore-backoffice/internal/domains/book/model"
)

// RepositoryInterface is the catalog store contract.
type RepositoryInterface interface {
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	// Transactional variants used by the order workflow.
	GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Book, error)
	UpdateStockTx(ctx context.Context, tx pgx.Tx, id int64, stock int, available bool) error

	List(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error)
	ListAll(ctx context.Context) ([]model.Book, error)
	ListAvailable(ctx context.Context) ([]model.Book, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Book, error)
	Search(ctx context.Context, keyword string) ([]model.Book, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error)

	UpdateImage(ctx context.Context, id int64, imageURL string) error
}
