package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bookstore-backoffice/internal/domains/book/model"
	"bookstore-backoffice/internal/domains/book/repository"
	"bookstore-backoffice/pkg/cache"
	"bookstore-backoffice/pkg/logger"
)

const (
	bookCacheTTL       = 5 * time.Minute
	statsCachePattern  = "stats:*"
	defaultFeaturedCap = 10
)

type bookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewBookService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &bookService{repo: repo, cache: c}
}

func (s *bookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToBook()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)
	logger.Info("book created", map[string]interface{}{"book_id": b.ID, "title": b.Title})
	return b, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ISBN = req.ISBN
	b.Title = req.Title
	b.Author = req.Author
	b.Description = req.Description
	b.Price = req.Price
	b.Language = req.Language
	b.Category = req.Category
	if req.IsAvailable != nil {
		if *req.IsAvailable && b.Stock == 0 {
			return nil, model.ErrNoStockAvailability
		}
		b.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, id)
	return b, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	key := bookCacheKey(id)

	var cached model.Book
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, b, bookCacheTTL); err != nil {
		logger.Warn("failed to cache book", err)
	}
	return b, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateBook(ctx, id)
	s.invalidateDashboard(ctx)
	logger.Info("book deleted", map[string]interface{}{"book_id": id})
	return nil
}

func (s *bookService) ListBooks(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *bookService) ListAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListAll(ctx)
}

func (s *bookService) ListAvailableBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *bookService) ListFeaturedBooks(ctx context.Context, limit int) ([]model.Book, error) {
	if limit < 1 || limit > 50 {
		limit = defaultFeaturedCap
	}
	return s.repo.ListFeatured(ctx, limit)
}

func (s *bookService) SearchBooks(ctx context.Context, keyword string) ([]model.Book, error) {
	if keyword == "" {
		return s.repo.ListAvailable(ctx)
	}
	return s.repo.Search(ctx, keyword)
}

func (s *bookService) ListBooksByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error) {
	if min.IsNegative() || max.LessThan(min) {
		return nil, fmt.Errorf("invalid price range [%s, %s]", min, max)
	}
	return s.repo.ListByPriceRange(ctx, min, max)
}

func (s *bookService) ListCategories() []string {
	return model.DefaultCategories
}

// UpdateStock replaces the stock count. Availability follows the count:
// zero turns the book off, a restock turns it back on.
func (s *bookService) UpdateStock(ctx context.Context, id int64, stock int) (*model.Book, error) {
	if stock < 0 {
		return nil, model.ErrInsufficientStock
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ApplyStock(stock)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, id)
	s.invalidateDashboard(ctx)
	return b, nil
}

// ToggleAvailability flips the flag. A sold-out book cannot be switched
// back on; restock it instead.
func (s *bookService) ToggleAvailability(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.IsAvailable && b.Stock == 0 {
		return nil, model.ErrNoStockAvailability
	}

	b.IsAvailable = !b.IsAvailable
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, id)
	s.invalidateDashboard(ctx)
	return b, nil
}

func bookCacheKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

func (s *bookService) invalidateBook(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate book cache", err)
	}
}

func (s *bookService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, statsCachePattern); err != nil {
		logger.Warn("failed to invalidate dashboard cache", err)
	}
}
