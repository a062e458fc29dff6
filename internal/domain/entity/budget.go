// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a spending ceiling for one category over a date range.
//
// CurrentAmount is a derived value: it is recomputed from the user's expense
// transactions whenever the budget is read and must never be trusted as an
// independently persisted total.
type Budget struct {
	ID            uint
	UserID        uint
	Category      Category
	Amount        decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	CurrentAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudget creates a new Budget entity with a zero current amount.
func NewBudget(userID uint, category Category, amount decimal.Decimal, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		UserID:        userID,
		Category:      category,
		Amount:        amount,
		StartDate:     startDate,
		EndDate:       endDate,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsActiveAt reports whether the given instant falls within the budget's
// [StartDate, EndDate] range. Activity is a calendar-date property: the
// budget stays active through the whole of its end date, whatever the
// clock reads.
func (b *Budget) IsActiveAt(t time.Time) bool {
	day := DateOf(t)
	return !day.Before(DateOf(b.StartDate)) && !day.After(DateOf(b.EndDate))
}

// DateOf truncates an instant to midnight of its calendar date, keeping the
// location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
