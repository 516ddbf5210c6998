package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// CREATE / UPDATE CUSTOMER
// =====================================================

type CreateCustomerRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
}

func (req CreateCustomerRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.PhoneNumber, validation.Length(6, 20)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.City, validation.Length(0, 100)),
		validation.Field(&req.PostalCode, validation.Length(0, 20)),
		validation.Field(&req.Country, validation.Length(0, 100)),
	)
}

// Normalize lowercases and trims the identity fields so lookups and the
// unique index agree on what "same customer" means.
func (req *CreateCustomerRequest) Normalize() {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.PhoneNumber != nil {
		phone := strings.TrimSpace(*req.PhoneNumber)
		if phone == "" {
			req.PhoneNumber = nil
		} else {
			req.PhoneNumber = &phone
		}
	}
}

func (req CreateCustomerRequest) ToCustomer() *Customer {
	return &Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		IsActive:    true,
	}
}

// ApplyTo overwrites an existing record with the incoming contact details.
// Used when a customer matched by phone places an order under new details.
func (req CreateCustomerRequest) ApplyTo(c *Customer) {
	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Email = req.Email
	c.PhoneNumber = req.PhoneNumber
	c.Address = req.Address
	c.City = req.City
	c.PostalCode = req.PostalCode
	c.Country = req.Country
}

type UpdateCustomerRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
}

func (req UpdateCustomerRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.PhoneNumber, validation.Length(6, 20)),
	)
}

// =====================================================
// LIST FILTER
// =====================================================

type CustomerFilter struct {
	Keyword    string
	City       string
	Country    string
	ActiveOnly bool
	Page       int
	Limit      int
}

func (f *CustomerFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f *CustomerFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
