package model

import "time"

// DailyOffer is a time-boxed discount, optionally tied to a single book
// or pack. Offers are hard-deleted; nothing references them once expired.
type DailyOffer struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discountPercent"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	BookID          *int64    `json:"bookId,omitempty"`
	PackID          *int64    `json:"packId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CoversDate reports whether the offer window includes day; both
// boundary dates count.
func (o *DailyOffer) CoversDate(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	start := o.StartDate.Truncate(24 * time.Hour)
	end := o.EndDate.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
