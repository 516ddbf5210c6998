package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RepositoryInterface aggregates counts across the other domains' tables.
type RepositoryInterface interface {
	CountBooks(ctx context.Context) (total, active int64, err error)
	CountCustomers(ctx context.Context) (total, active int64, err error)
	CountOrders(ctx context.Context) (total, pending int64, err error)
	CountPacks(ctx context.Context) (total, active int64, err error)
	CountOffers(ctx context.Context) (total, active int64, err error)

	// RevenueByStatus sums order totals per status. Summing runs store-side;
	// which statuses count as revenue is the service's call.
	RevenueByStatus(ctx context.Context) (map[string]decimal.Decimal, error)
}
