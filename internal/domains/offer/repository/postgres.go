package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-backoffice/internal/domains/offer/model"
)

const offerColumns = `id, title, description, discount_percent, start_date,
	end_date, is_active, book_id, pack_id, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, o *model.DailyOffer) error {
	query := `
		INSERT INTO daily_offers (
			title, description, discount_percent, start_date, end_date,
			is_active, book_id, pack_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		o.Title,
		o.Description,
		o.DiscountPercent,
		o.StartDate,
		o.EndDate,
		o.IsActive,
		o.BookID,
		o.PackID,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, o *model.DailyOffer) error {
	query := `
		UPDATE daily_offers SET
			title = $1, description = $2, discount_percent = $3,
			start_date = $4, end_date = $5, is_active = $6,
			book_id = $7, pack_id = $8, updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		o.Title,
		o.Description,
		o.DiscountPercent,
		o.StartDate,
		o.EndDate,
		o.IsActive,
		o.BookID,
		o.PackID,
		o.ID,
	).Scan(&o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrOfferNotFound
		}
		return fmt.Errorf("failed to update offer: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.DailyOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_offers WHERE id = $1`, offerColumns)

	o, err := scanOffer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer by id: %w", err)
	}
	return o, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM daily_offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}
	return nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.DailyOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_offers ORDER BY start_date DESC`, offerColumns)
	return r.queryOffers(ctx, query)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.DailyOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_offers WHERE is_active = true ORDER BY start_date DESC`, offerColumns)
	return r.queryOffers(ctx, query)
}

// ListCurrent returns active offers whose window covers day; both
// boundary dates are inclusive.
func (r *postgresRepository) ListCurrent(ctx context.Context, day time.Time) ([]model.DailyOffer, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM daily_offers
		WHERE is_active = true
		  AND start_date::date <= $1::date
		  AND end_date::date >= $1::date
		ORDER BY discount_percent DESC
	`, offerColumns)
	return r.queryOffers(ctx, query, day)
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID int64) ([]model.DailyOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_offers WHERE book_id = $1 ORDER BY start_date DESC`, offerColumns)
	return r.queryOffers(ctx, query, bookID)
}

func (r *postgresRepository) ListByPack(ctx context.Context, packID int64) ([]model.DailyOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM daily_offers WHERE pack_id = $1 ORDER BY start_date DESC`, offerColumns)
	return r.queryOffers(ctx, query, packID)
}

func (r *postgresRepository) DeactivateExpired(ctx context.Context, day time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE daily_offers SET is_active = false, updated_at = now()
		WHERE is_active = true AND end_date::date < $1::date
	`, day)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired offers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) queryOffers(ctx context.Context, query string, args ...interface{}) ([]model.DailyOffer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("offer query failed: %w", err)
	}
	defer rows.Close()

	offers := make([]model.DailyOffer, 0)
	for rows.Next() {
		var o model.DailyOffer
		if err := rows.Scan(
			&o.ID, &o.Title, &o.Description, &o.DiscountPercent,
			&o.StartDate, &o.EndDate, &o.IsActive, &o.BookID, &o.PackID,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("offer scan failed: %w", err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("offer rows error: %w", err)
	}
	return offers, nil
}

func scanOffer(row pgx.Row) (*model.DailyOffer, error) {
	var o model.DailyOffer
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.DiscountPercent,
		&o.StartDate, &o.EndDate, &o.IsActive, &o.BookID, &o.PackID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
