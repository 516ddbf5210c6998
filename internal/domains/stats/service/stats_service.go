package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	ordermodel "bookstore-backoffice/internal/domains/order/model"
	"bookstore-backoffice/internal/domains/stats/model"
	"bookstore-backoffice/internal/domains/stats/repository"
	"bookstore-backoffice/pkg/cache"
	"bookstore-backoffice/pkg/logger"
)

const (
	dashboardCacheKey = "stats:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

type ServiceInterface interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

type statsService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewStatsService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &statsService{repo: repo, cache: c}
}

// Dashboard aggregates the back-office counters. The payload is cached
// briefly; writes in the domains delete stats:* so a stale read window is
// bounded by the TTL either way.
func (s *statsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var cached model.Dashboard
	if found, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	d := &model.Dashboard{}
	var err error

	if d.TotalBooks, d.ActiveBooks, err = s.repo.CountBooks(ctx); err != nil {
		return nil, err
	}
	if d.TotalCustomers, d.ActiveCustomers, err = s.repo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if d.TotalOrders, d.PendingOrders, err = s.repo.CountOrders(ctx); err != nil {
		return nil, err
	}
	if d.TotalPacks, d.ActivePacks, err = s.repo.CountPacks(ctx); err != nil {
		return nil, err
	}
	if d.TotalOffers, d.ActiveOffers, err = s.repo.CountOffers(ctx); err != nil {
		return nil, err
	}
	sums, err := s.repo.RevenueByStatus(ctx)
	if err != nil {
		return nil, err
	}
	d.TotalRevenue = totalRevenue(sums)

	if err := s.cache.Set(ctx, dashboardCacheKey, d, dashboardCacheTTL); err != nil {
		logger.Warn("failed to cache dashboard", err)
	}
	return d, nil
}

// totalRevenue adds up the per-status sums; a cancelled order never counts.
func totalRevenue(sums map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for status, sum := range sums {
		if status == ordermodel.StatusCancelled {
			continue
		}
		total = total.Add(sum)
	}
	return total
}
