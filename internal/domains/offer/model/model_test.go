package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoversDateBoundariesAreInclusive(t *testing.T) {
	offer := DailyOffer{
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 9, 7),
	}

	assert.True(t, offer.CoversDate(day(2026, 9, 1)), "start date")
	assert.True(t, offer.CoversDate(day(2026, 9, 4)), "middle")
	assert.True(t, offer.CoversDate(day(2026, 9, 7)), "end date")
	assert.False(t, offer.CoversDate(day(2026, 8, 31)))
	assert.False(t, offer.CoversDate(day(2026, 9, 8)))
}

func TestCoversDateSingleDayWindow(t *testing.T) {
	offer := DailyOffer{
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 9, 1),
	}

	assert.True(t, offer.CoversDate(day(2026, 9, 1)))
	assert.False(t, offer.CoversDate(day(2026, 9, 2)))
}

func TestCreateOfferRequestValidation(t *testing.T) {
	valid := CreateOfferRequest{
		Title:           "Summer sale",
		DiscountPercent: 20,
		StartDate:       day(2026, 9, 1),
		EndDate:         day(2026, 9, 7),
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidDateSpan)

	tooDeep := valid
	tooDeep.DiscountPercent = 120
	assert.Error(t, tooDeep.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())
}
