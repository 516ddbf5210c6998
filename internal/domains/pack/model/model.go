package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pack is a curated book bundle sold at a single price. Rows are
// soft-deleted via IsActive so historical orders keep their reference.
type Pack struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         *string         `json:"image,omitempty"`
	IsActive      bool            `json:"isActive"`
	IsFeatured    bool            `json:"isFeatured"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
