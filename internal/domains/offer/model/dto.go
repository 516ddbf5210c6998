package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateOfferRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discountPercent"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	BookID          *int64    `json:"bookId"`
	PackID          *int64    `json:"packId"`
}

func (req CreateOfferRequest) Validate() error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.DiscountPercent, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	); err != nil {
		return err
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateSpan
	}
	return nil
}

func (req CreateOfferRequest) ToOffer() *DailyOffer {
	return &DailyOffer{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        true,
		BookID:          req.BookID,
		PackID:          req.PackID,
	}
}

type UpdateOfferRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discountPercent"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        *bool     `json:"isActive"`
	BookID          *int64    `json:"bookId"`
	PackID          *int64    `json:"packId"`
}

func (req UpdateOfferRequest) Validate() error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.DiscountPercent, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	); err != nil {
		return err
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateSpan
	}
	return nil
}
