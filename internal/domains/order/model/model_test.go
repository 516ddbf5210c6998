package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	n := NewOrderNumber(now)

	assert.Regexp(t, `^ORD-20260901-[A-HJ-NP-Z2-9]{6}$`, n)
}

func TestNewOrderNumberUsesUTCDate(t *testing.T) {
	// 23:30 in UTC+7 is already the next day locally; the reference stays UTC.
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2026, 9, 2, 1, 30, 0, 0, loc) // 2026-09-01T18:30Z

	n := NewOrderNumber(now)

	assert.True(t, strings.HasPrefix(n, "ORD-20260901-"), "got %s", n)
}

func TestNewOrderNumberVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[NewOrderNumber(now)] = true
	}
	// collisions in 100 draws over 32^6 values would be astonishing
	assert.Greater(t, len(seen), 90)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusShipped, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("DELIVERED"))
	assert.False(t, IsValidStatus("pending"))
}

func TestCreateOrderRequestValidation(t *testing.T) {
	req := CreateOrderRequest{}
	assert.ErrorIs(t, req.Validate(), ErrEmptyItems)

	req.Items = []OrderItemRequest{{BookID: 1, Quantity: 0}}
	assert.Error(t, req.Validate())

	req.Items = []OrderItemRequest{{BookID: 1, Quantity: 2}}
	assert.NoError(t, req.Validate())
}

func TestSimpleOrderRequestConversion(t *testing.T) {
	phone := "+49123456"
	simple := SimpleOrderRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: &phone,
		Address:     "1 Main St",
		City:        "Berlin",
		Items:       []OrderItemRequest{{BookID: 3, Quantity: 1}},
		Notes:       "gift wrap",
	}

	req := simple.ToCreateOrderRequest()

	assert.Equal(t, "Ada", req.Customer.FirstName)
	assert.Equal(t, "ada@example.com", req.Customer.Email)
	assert.Equal(t, "Berlin", req.Customer.City)
	assert.Equal(t, simple.Items, req.Items)
	// the flat shape ships to the customer's own address
	assert.Equal(t, "1 Main St", req.ShippingAddress)
	assert.Equal(t, "gift wrap", req.Notes)
}

func TestCreateOrderRequestCarriesShippingAddress(t *testing.T) {
	body := []byte(`{
		"customer": {"firstName": "Ada", "email": "ada@example.com"},
		"items": [{"bookId": 1, "quantity": 2}],
		"shippingAddress": "1 Main St"
	}`)

	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "1 Main St", req.ShippingAddress)

	out, err := json.Marshal(Order{ShippingAddress: req.ShippingAddress})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"shippingAddress":"1 Main St"`)
}
