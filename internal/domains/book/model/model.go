package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is the catalog entity. Category and language are plain strings - the
// back office predates any category table and the dashboard only ever
// filters on them as text.
type Book struct {
	ID          int64           `json:"id"`
	ISBN        *string         `json:"isbn,omitempty"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Language    string          `json:"language"`
	Category    string          `json:"category"`
	Image       *string         `json:"image,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ApplyStock sets the stock and keeps the availability invariant: zero stock
// always means unavailable, restocking a sold-out book makes it available
// again.
func (b *Book) ApplyStock(stock int) {
	b.Stock = stock
	if stock == 0 {
		b.IsAvailable = false
	} else {
		b.IsAvailable = true
	}
}

// DefaultCategories is the fixed list exposed on /api/books/categories.
// A separate category table is a known follow-up once the storefront needs
// localised names.
var DefaultCategories = []string{
	"Fiction", "Non-Fiction", "Science", "History",
	"Romance", "Thriller", "Fantasy", "Biography",
}
