package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreatePackRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         *string         `json:"image"`
	IsFeatured    bool            `json:"isFeatured"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
}

func (req CreatePackRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.By(packPriceRule)),
		validation.Field(&req.StockQuantity, validation.Min(0)),
	)
}

func packPriceRule(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || !price.IsPositive() {
		return validation.NewError("validation_price", "price must be greater than zero")
	}
	return nil
}

func (req CreatePackRequest) ToPack() *Pack {
	return &Pack{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Image:         req.Image,
		IsActive:      true,
		IsFeatured:    req.IsFeatured,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
	}
}

type UpdatePackRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         *string         `json:"image"`
	IsFeatured    *bool           `json:"isFeatured"`
	StockQuantity *int            `json:"stockQuantity"`
	Category      string          `json:"category"`
}

func (req UpdatePackRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.By(packPriceRule)),
	)
}
