package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// CREATE / UPDATE BOOK
// =====================================================

type CreateBookRequest struct {
	ISBN        *string         `json:"isbn"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Language    string          `json:"language"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"isAvailable"`
}

func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Author, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Language, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.By(priceRule)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

// priceRule rejects non-positive prices; ozzo's Min does not understand
// decimal.Decimal.
func priceRule(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || !price.IsPositive() {
		return validation.NewError("validation_price", "price must be greater than zero")
	}
	return nil
}

// ToBook builds the entity. Availability defaults to true, but zero stock
// always wins.
func (req CreateBookRequest) ToBook() *Book {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	if req.Stock == 0 {
		available = false
	}

	return &Book{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Language:    req.Language,
		Category:    req.Category,
		IsAvailable: available,
	}
}

type UpdateBookRequest struct {
	ISBN        *string         `json:"isbn"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Language    string          `json:"language"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"isAvailable"`
}

func (req UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Author, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Language, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.By(priceRule)),
	)
}

// =====================================================
// STOCK
// =====================================================

type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

func (req UpdateStockRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

// =====================================================
// LIST / SEARCH FILTERS
// =====================================================

type BookFilter struct {
	Keyword       string
	Category      string
	Language      string
	AvailableOnly bool
	PriceMin      *decimal.Decimal
	PriceMax      *decimal.Decimal
	Page          int
	Limit         int
}

// Normalize clamps pagination to sane values.
func (f *BookFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f *BookFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// =====================================================
// BULK IMPORT
// =====================================================

// ImportRowError describes one failed spreadsheet row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportReport summarises a bulk import run.
type ImportReport struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
