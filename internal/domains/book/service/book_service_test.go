package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-backoffice/internal/domains/book/model"
)

type fakeBookRepo struct {
	books  map[int64]*model.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[int64]*model.Book{}, nextID: 1}
}

func (f *fakeBookRepo) add(b *model.Book) *model.Book {
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return b
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	f.add(b)
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return model.ErrBookNotFound
	}
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Book, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBookRepo) UpdateStockTx(ctx context.Context, tx pgx.Tx, id int64, stock int, available bool) error {
	b, ok := f.books[id]
	if !ok {
		return model.ErrBookNotFound
	}
	b.Stock = stock
	b.IsAvailable = available
	return nil
}

func (f *fakeBookRepo) List(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error) {
	return nil, 0, nil
}
func (f *fakeBookRepo) ListAll(ctx context.Context) ([]model.Book, error)       { return nil, nil }
func (f *fakeBookRepo) ListAvailable(ctx context.Context) ([]model.Book, error) { return nil, nil }
func (f *fakeBookRepo) ListFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	b, ok := f.books[id]
	if !ok {
		return model.ErrBookNotFound
	}
	b.Image = &imageURL
	return nil
}

// noopCache drops everything; reads always miss.
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

func newBookService(repo *fakeBookRepo) ServiceInterface {
	return NewBookService(repo, noopCache{})
}

func TestCreateBookZeroStockStartsUnavailable(t *testing.T) {
	svc := newBookService(newFakeBookRepo())

	b, err := svc.CreateBook(context.Background(), &model.CreateBookRequest{
		Title:    "The Pragmatic Programmer",
		Author:   "Hunt & Thomas",
		Price:    decimal.NewFromInt(42),
		Stock:    0,
		Language: "English",
		Category: "Non-Fiction",
	})

	require.NoError(t, err)
	assert.False(t, b.IsAvailable)
}

func TestCreateBookRejectsNonPositivePrice(t *testing.T) {
	svc := newBookService(newFakeBookRepo())

	_, err := svc.CreateBook(context.Background(), &model.CreateBookRequest{
		Title:    "Free Book",
		Author:   "Nobody",
		Price:    decimal.Zero,
		Stock:    3,
		Language: "English",
		Category: "Fiction",
	})

	assert.Error(t, err)
}

func TestUpdateStockZeroForcesUnavailable(t *testing.T) {
	repo := newFakeBookRepo()
	repo.add(&model.Book{Title: "Dune", Price: decimal.NewFromInt(20), Stock: 5, IsAvailable: true})
	svc := newBookService(repo)

	b, err := svc.UpdateStock(context.Background(), 1, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)
	assert.False(t, b.IsAvailable)
}

func TestUpdateStockRestockRestoresAvailability(t *testing.T) {
	repo := newFakeBookRepo()
	repo.add(&model.Book{Title: "Dune", Price: decimal.NewFromInt(20), Stock: 0, IsAvailable: false})
	svc := newBookService(repo)

	b, err := svc.UpdateStock(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, b.Stock)
	assert.True(t, b.IsAvailable)
}

func TestToggleAvailabilityRefusedAtZeroStock(t *testing.T) {
	repo := newFakeBookRepo()
	repo.add(&model.Book{Title: "Dune", Price: decimal.NewFromInt(20), Stock: 0, IsAvailable: false})
	svc := newBookService(repo)

	_, err := svc.ToggleAvailability(context.Background(), 1)

	assert.ErrorIs(t, err, model.ErrNoStockAvailability)
}

func TestToggleAvailabilityFlipsWithStock(t *testing.T) {
	repo := newFakeBookRepo()
	repo.add(&model.Book{Title: "Dune", Price: decimal.NewFromInt(20), Stock: 3, IsAvailable: true})
	svc := newBookService(repo)

	b, err := svc.ToggleAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, b.IsAvailable)

	b, err = svc.ToggleAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, b.IsAvailable)
}

func TestUpdateBookCannotMarkAvailableAtZeroStock(t *testing.T) {
	repo := newFakeBookRepo()
	repo.add(&model.Book{Title: "Dune", Price: decimal.NewFromInt(20), Stock: 0, IsAvailable: false})
	svc := newBookService(repo)

	available := true
	_, err := svc.UpdateBook(context.Background(), 1, &model.UpdateBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Price:       decimal.NewFromInt(25),
		Language:    "English",
		Category:    "Fiction",
		IsAvailable: &available,
	})

	assert.ErrorIs(t, err, model.ErrNoStockAvailability)
}

func TestGetBookUnknownID(t *testing.T) {
	svc := newBookService(newFakeBookRepo())

	_, err := svc.GetBook(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
