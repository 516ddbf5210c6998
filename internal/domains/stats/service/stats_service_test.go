package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordermodel "bookstore-backoffice/internal/domains/order/model"
	"bookstore-backoffice/internal/domains/stats/model"
)

type fakeStatsRepo struct {
	revenue map[string]decimal.Decimal
	calls   int
}

func (f *fakeStatsRepo) CountBooks(ctx context.Context) (int64, int64, error) {
	f.calls++
	return 120, 95, nil
}
func (f *fakeStatsRepo) CountCustomers(ctx context.Context) (int64, int64, error) { return 48, 40, nil }
func (f *fakeStatsRepo) CountOrders(ctx context.Context) (int64, int64, error)    { return 300, 12, nil }
func (f *fakeStatsRepo) CountPacks(ctx context.Context) (int64, int64, error)     { return 9, 6, nil }
func (f *fakeStatsRepo) CountOffers(ctx context.Context) (int64, int64, error)    { return 5, 2, nil }
func (f *fakeStatsRepo) RevenueByStatus(ctx context.Context) (map[string]decimal.Decimal, error) {
	return f.revenue, nil
}

// memCache is a tiny in-process cache.Cache for exercising the 30s
// dashboard caching without Redis.
type memCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) DeletePattern(ctx context.Context, pattern string) error {
	m.data = map[string][]byte{}
	return nil
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

func TestDashboardAggregatesAllCounters(t *testing.T) {
	repo := &fakeStatsRepo{revenue: map[string]decimal.Decimal{
		ordermodel.StatusShipped: decimal.RequireFromString("15.00"),
	}}
	svc := NewStatsService(repo, newMemCache())

	d, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &model.Dashboard{
		TotalBooks:      120,
		ActiveBooks:     95,
		TotalCustomers:  48,
		ActiveCustomers: 40,
		TotalOrders:     300,
		PendingOrders:   12,
		TotalPacks:      9,
		ActivePacks:     6,
		TotalOffers:     5,
		ActiveOffers:    2,
		TotalRevenue:    decimal.RequireFromString("15.00"),
	}, d)
}

func TestDashboardRevenueExcludesCancelledOrders(t *testing.T) {
	repo := &fakeStatsRepo{revenue: map[string]decimal.Decimal{
		ordermodel.StatusPending:   decimal.RequireFromString("10.00"),
		ordermodel.StatusCancelled: decimal.RequireFromString("20.00"),
		ordermodel.StatusShipped:   decimal.RequireFromString("5.00"),
	}}
	svc := NewStatsService(repo, newMemCache())

	d, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.True(t, d.TotalRevenue.Equal(decimal.RequireFromString("15.00")),
		"revenue = %s", d.TotalRevenue)
}

func TestDashboardIsCached(t *testing.T) {
	repo := &fakeStatsRepo{}
	cache := newMemCache()
	svc := NewStatsService(repo, cache)

	_, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	_, err = svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "second call must come from the cache")
	assert.Equal(t, 30*time.Second, cache.ttls["stats:dashboard"])
}

func TestDashboardRecomputesAfterInvalidation(t *testing.T) {
	repo := &fakeStatsRepo{}
	cache := newMemCache()
	svc := NewStatsService(repo, cache)

	_, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// a write in any domain clears stats:*
	require.NoError(t, cache.DeletePattern(context.Background(), "stats:*"))

	_, err = svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
