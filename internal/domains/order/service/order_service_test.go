package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "bookstore-backoffice/internal/domains/book/model"
	customermodel "bookstore-backoffice/internal/domains/customer/model"
	"bookstore-backoffice/internal/domains/order/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeOrderRepo struct {
	orders map[int64]*model.Order
	items  map[int64][]model.OrderItem
	nextID int64

	// numberConflicts makes the first N CreateOrderTx calls fail as if the
	// generated number already existed.
	numberConflicts int
	createCalls     int
	lastTx          *fakeTx
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[int64]*model.Order{},
		items:  map[int64][]model.OrderItem{},
		nextID: 1,
	}
}

func (f *fakeOrderRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	f.lastTx = &fakeTx{}
	return f.lastTx, nil
}

func (f *fakeOrderRepo) CreateOrderTx(ctx context.Context, tx pgx.Tx, o *model.Order) error {
	f.createCalls++
	if f.numberConflicts > 0 {
		f.numberConflicts--
		return model.ErrOrderNumberTaken
	}
	o.ID = f.nextID
	f.nextID++
	copied := *o
	f.orders[o.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) CreateOrderItemsTx(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) error {
	f.items[orderID] = append([]model.OrderItem{}, items...)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	copied := *o
	copied.Items = f.items[id]
	return &copied, nil
}

func (f *fakeOrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	for id, o := range f.orders {
		if o.OrderNumber == orderNumber {
			return f.GetByID(ctx, id)
		}
	}
	return nil, model.ErrOrderNotFound
}

func (f *fakeOrderRepo) GetItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	o.Status = status
	copied := *o
	return &copied, nil
}

type fakeBookRepo struct {
	books map[int64]*bookmodel.Book
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id int64) (*bookmodel.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, bookmodel.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (*bookmodel.Book, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBookRepo) UpdateStockTx(ctx context.Context, tx pgx.Tx, id int64, stock int, available bool) error {
	b, ok := f.books[id]
	if !ok {
		return bookmodel.ErrBookNotFound
	}
	b.Stock = stock
	b.IsAvailable = available
	return nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *bookmodel.Book) error { return nil }
func (f *fakeBookRepo) Update(ctx context.Context, b *bookmodel.Book) error { return nil }
func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (f *fakeBookRepo) List(ctx context.Context, filter *bookmodel.BookFilter) ([]bookmodel.Book, int, error) {
	return nil, 0, nil
}
func (f *fakeBookRepo) ListAll(ctx context.Context) ([]bookmodel.Book, error)       { return nil, nil }
func (f *fakeBookRepo) ListAvailable(ctx context.Context) ([]bookmodel.Book, error) { return nil, nil }
func (f *fakeBookRepo) ListFeatured(ctx context.Context, limit int) ([]bookmodel.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) Search(ctx context.Context, keyword string) ([]bookmodel.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]bookmodel.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) UpdateImage(ctx context.Context, id int64, imageURL string) error { return nil }

// fakeCustomerService resolves every request to a single fixed customer.
type fakeCustomerService struct {
	customer *customermodel.Customer
	lastReq  *customermodel.CreateCustomerRequest
}

func (f *fakeCustomerService) CreateOrGet(ctx context.Context, req *customermodel.CreateCustomerRequest) (*customermodel.Customer, error) {
	f.lastReq = req
	return f.customer, nil
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, req *customermodel.CreateCustomerRequest) (*customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, id int64, req *customermodel.UpdateCustomerRequest) (*customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) GetCustomer(ctx context.Context, id int64) (*customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) ListCustomers(ctx context.Context, filter *customermodel.CustomerFilter) ([]customermodel.Customer, int, error) {
	return nil, 0, nil
}
func (f *fakeCustomerService) ListActiveCustomers(ctx context.Context) ([]customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) SearchCustomers(ctx context.Context, keyword string) ([]customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) ListCustomersByCity(ctx context.Context, city string) ([]customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) ListCustomersByCountry(ctx context.Context, country string) ([]customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) DeactivateCustomer(ctx context.Context, id int64) error { return nil }
func (f *fakeCustomerService) ToggleCustomerStatus(ctx context.Context, id int64) (*customermodel.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, id int64) error { return nil }

type fakeEnqueuer struct {
	tasks []string
}

func (f *fakeEnqueuer) Enqueue(taskType string, payload interface{}, opts ...asynq.Option) error {
	f.tasks = append(f.tasks, taskType)
	return nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error        { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Ping(ctx context.Context) error                          { return nil }

// =====================================================
// SETUP
// =====================================================

type orderFixture struct {
	repo      *fakeOrderRepo
	books     *fakeBookRepo
	customers *fakeCustomerService
	enqueuer  *fakeEnqueuer
}

func newOrderFixture(deductStock bool) (ServiceInterface, *orderFixture) {
	fx := &orderFixture{
		repo: newFakeOrderRepo(),
		books: &fakeBookRepo{books: map[int64]*bookmodel.Book{
			1: {ID: 1, Title: "Dune", Price: decimal.RequireFromString("19.99"), Stock: 10, IsAvailable: true},
			2: {ID: 2, Title: "Neuromancer", Price: decimal.RequireFromString("12.50"), Stock: 3, IsAvailable: true},
		}},
		customers: &fakeCustomerService{customer: &customermodel.Customer{
			ID:    7,
			Email: "ada@example.com",
		}},
		enqueuer: &fakeEnqueuer{},
	}
	svc := NewOrderService(fx.repo, fx.customers, fx.books, fx.enqueuer, noopCache{}, deductStock)
	return svc, fx
}

func orderRequest(items ...model.OrderItemRequest) *model.CreateOrderRequest {
	return &model.CreateOrderRequest{
		Customer: customermodel.CreateCustomerRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		Items: items,
	}
}

// =====================================================
// TESTS
// =====================================================

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-HJ-NP-Z2-9]{6}$`)

func TestCreateOrderComputesTotalAndSnapshots(t *testing.T) {
	svc, fx := newOrderFixture(false)

	order, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 2},
		model.OrderItemRequest{BookID: 2, Quantity: 3},
	))

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, int64(7), order.CustomerID)
	// 2 x 19.99 + 3 x 12.50 = 77.48
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("77.48")),
		"total = %s", order.TotalAmount)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Dune", order.Items[0].BookTitle)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.RequireFromString("39.98")))

	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
	assert.True(t, fx.repo.lastTx.committed)
}

func TestCreateOrderPersistsShippingAddress(t *testing.T) {
	svc, _ := newOrderFixture(false)

	req := orderRequest(model.OrderItemRequest{BookID: 1, Quantity: 1})
	req.ShippingAddress = "1 Main St"

	order, err := svc.CreateOrder(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "1 Main St", order.ShippingAddress)

	stored, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", stored.ShippingAddress)
}

func TestCreateOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	svc, fx := newOrderFixture(false)

	order, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))
	require.NoError(t, err)

	// a later price change must not touch the stored item
	fx.books.books[1].Price = decimal.RequireFromString("99.99")

	stored, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("19.99")))
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, fx := newOrderFixture(false)

	_, err := svc.CreateOrder(context.Background(), orderRequest())

	assert.ErrorIs(t, err, model.ErrEmptyItems)
	assert.Empty(t, fx.repo.orders)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc, _ := newOrderFixture(false)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 0},
	))

	assert.Error(t, err)
}

func TestCreateOrderUnknownBookAborts(t *testing.T) {
	svc, fx := newOrderFixture(false)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
		model.OrderItemRequest{BookID: 99, Quantity: 1},
	))

	assert.ErrorIs(t, err, bookmodel.ErrBookNotFound)
	assert.Empty(t, fx.repo.orders)
	assert.Empty(t, fx.enqueuer.tasks)
}

func TestCreateOrderRetriesOnceOnNumberCollision(t *testing.T) {
	svc, fx := newOrderFixture(false)
	fx.repo.numberConflicts = 1

	order, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))

	require.NoError(t, err)
	assert.Equal(t, 2, fx.repo.createCalls)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)
}

func TestCreateOrderGivesUpAfterSecondCollision(t *testing.T) {
	svc, fx := newOrderFixture(false)
	fx.repo.numberConflicts = 2

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))

	assert.ErrorIs(t, err, model.ErrOrderNumberTaken)
	assert.Equal(t, 2, fx.repo.createCalls)
}

func TestCreateOrderLeavesStockAloneByDefault(t *testing.T) {
	svc, fx := newOrderFixture(false)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 4},
	))

	require.NoError(t, err)
	assert.Equal(t, 10, fx.books.books[1].Stock)
}

func TestCreateOrderDeductsStockWhenEnabled(t *testing.T) {
	svc, fx := newOrderFixture(true)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 4},
	))

	require.NoError(t, err)
	assert.Equal(t, 6, fx.books.books[1].Stock)
	assert.True(t, fx.books.books[1].IsAvailable)
}

func TestCreateOrderDeductionKeepsManualUnavailableFlag(t *testing.T) {
	svc, fx := newOrderFixture(true)
	fx.books.books[1].IsAvailable = false

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 4},
	))

	require.NoError(t, err)
	assert.Equal(t, 6, fx.books.books[1].Stock)
	assert.False(t, fx.books.books[1].IsAvailable)
}

func TestCreateOrderStockHittingZeroClearsAvailability(t *testing.T) {
	svc, fx := newOrderFixture(true)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 2, Quantity: 3},
	))

	require.NoError(t, err)
	assert.Equal(t, 0, fx.books.books[2].Stock)
	assert.False(t, fx.books.books[2].IsAvailable)
}

func TestCreateOrderInsufficientStockAbortsWhenDeducting(t *testing.T) {
	svc, fx := newOrderFixture(true)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 2, Quantity: 5},
	))

	assert.ErrorIs(t, err, bookmodel.ErrInsufficientStock)
	assert.Equal(t, 3, fx.books.books[2].Stock)
	assert.False(t, fx.repo.lastTx.committed)
	assert.True(t, fx.repo.lastTx.rolledBack)
}

func TestCreateOrderEnqueuesConfirmation(t *testing.T) {
	svc, fx := newOrderFixture(false)

	_, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))

	require.NoError(t, err)
	assert.Equal(t, []string{"order:send_confirmation"}, fx.enqueuer.tasks)
}

func TestUpdateOrderStatusValidTransition(t *testing.T) {
	svc, fx := newOrderFixture(false)

	order, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)
	assert.Equal(t, model.StatusConfirmed, fx.repo.orders[order.ID].Status)
}

func TestUpdateOrderStatusRejectsBackwardTransition(t *testing.T) {
	svc, _ := newOrderFixture(false)

	order, err := svc.CreateOrder(context.Background(), orderRequest(
		model.OrderItemRequest{BookID: 1, Quantity: 1},
	))
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, model.StatusShipped)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newOrderFixture(false)

	_, err := svc.UpdateOrderStatus(context.Background(), 1, "DELIVERED")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}
