package repository

import (
	"context"
	"time"

	"bookstore-backoffice/internal/domains/offer/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, o *model.DailyOffer) error
	Update(ctx context.Context, o *model.DailyOffer) error
	GetByID(ctx context.Context, id int64) (*model.DailyOffer, error)
	Delete(ctx context.Context, id int64) error

	ListAll(ctx context.Context) ([]model.DailyOffer, error)
	ListActive(ctx context.Context) ([]model.DailyOffer, error)
	ListCurrent(ctx context.Context, day time.Time) ([]model.DailyOffer, error)
	ListByBook(ctx context.Context, bookID int64) ([]model.DailyOffer, error)
	ListByPack(ctx context.Context, packID int64) ([]model.DailyOffer, error)

	// DeactivateExpired clears the active flag on offers whose end date is
	// before day. Returns how many rows changed.
	DeactivateExpired(ctx context.Context, day time.Time) (int64, error)
}
