package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	customermodel "bookstore-backoffice/internal/domains/customer/model"
)

// =====================================================
// CREATE ORDER
// =====================================================

type OrderItemRequest struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

func (req OrderItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

// CreateOrderRequest is the full order intake: contact details plus the
// book lines. The customer block is resolved to a row before the order is
// written.
type CreateOrderRequest struct {
	Customer        customermodel.CreateCustomerRequest `json:"customer"`
	Items           []OrderItemRequest                  `json:"items"`
	ShippingAddress string                              `json:"shippingAddress"`
	Notes           string                              `json:"notes"`
}

func (req CreateOrderRequest) Validate() error {
	if len(req.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range req.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return validation.ValidateStruct(&req,
		validation.Field(&req.ShippingAddress, validation.Length(0, 500)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

// SimpleOrderRequest is the flat shape older storefront clients send.
// It carries the same data as CreateOrderRequest without nesting; the
// customer's address doubles as the shipping address.
type SimpleOrderRequest struct {
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	PhoneNumber *string            `json:"phoneNumber"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	PostalCode  string             `json:"postalCode"`
	Country     string             `json:"country"`
	Items       []OrderItemRequest `json:"items"`
	Notes       string             `json:"notes"`
}

func (req SimpleOrderRequest) ToCreateOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		Customer: customermodel.CreateCustomerRequest{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
			City:        req.City,
			PostalCode:  req.PostalCode,
			Country:     req.Country,
		},
		Items:           req.Items,
		ShippingAddress: req.Address,
		Notes:           req.Notes,
	}
}

// =====================================================
// STATUS UPDATE
// =====================================================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (req UpdateStatusRequest) Validate() error {
	if !IsValidStatus(req.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// =====================================================
// LIST FILTER
// =====================================================

type OrderFilter struct {
	Status     string
	CustomerID int64
	Page       int
	Limit      int
}

func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f *OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
