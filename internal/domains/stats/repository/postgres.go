package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CountBooks(ctx context.Context) (int64, int64, error) {
	return r.countPair(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_available) FROM books`, "books")
}

func (r *postgresRepository) CountCustomers(ctx context.Context) (int64, int64, error) {
	return r.countPair(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM customers`, "customers")
}

func (r *postgresRepository) CountOrders(ctx context.Context) (int64, int64, error) {
	return r.countPair(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'PENDING') FROM orders`, "orders")
}

func (r *postgresRepository) CountPacks(ctx context.Context) (int64, int64, error) {
	return r.countPair(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM packs`, "packs")
}

func (r *postgresRepository) CountOffers(ctx context.Context) (int64, int64, error) {
	return r.countPair(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM daily_offers`, "offers")
}

func (r *postgresRepository) RevenueByStatus(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COALESCE(SUM(total_amount), 0)
		FROM orders
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	defer rows.Close()

	sums := map[string]decimal.Decimal{}
	for rows.Next() {
		var status string
		var sum decimal.Decimal
		if err := rows.Scan(&status, &sum); err != nil {
			return nil, fmt.Errorf("revenue scan failed: %w", err)
		}
		sums[status] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue rows error: %w", err)
	}
	return sums, nil
}

func (r *postgresRepository) countPair(ctx context.Context, query, what string) (int64, int64, error) {
	var total, filtered int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &filtered); err != nil {
		return 0, 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return total, filtered, nil
}
