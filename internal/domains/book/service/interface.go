package service

import (
	"context"
	"mime/multipart"

	"github.com/shopspring/decimal"

	"bookstore-backoffice/internal/domains/book/model"
)

// ServiceInterface covers catalog management.
type ServiceInterface interface {
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, req *model.UpdateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListBooks(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error)
	ListAllBooks(ctx context.Context) ([]model.Book, error)
	ListAvailableBooks(ctx context.Context) ([]model.Book, error)
	ListFeaturedBooks(ctx context.Context, limit int) ([]model.Book, error)
	SearchBooks(ctx context.Context, keyword string) ([]model.Book, error)
	ListBooksByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error)
	ListCategories() []string

	UpdateStock(ctx context.Context, id int64, stock int) (*model.Book, error)
	ToggleAvailability(ctx context.Context, id int64) (*model.Book, error)
}

// ImageServiceInterface handles cover uploads.
type ImageServiceInterface interface {
	UploadCover(ctx context.Context, bookID int64, file *multipart.FileHeader) (string, error)
}

// ImportServiceInterface handles spreadsheet bulk imports.
type ImportServiceInterface interface {
	ImportBooks(ctx context.Context, file *multipart.FileHeader) (*model.ImportReport, error)
}
