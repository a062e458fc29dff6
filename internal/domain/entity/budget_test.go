package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBudgetIsActiveAt(t *testing.T) {
	budget := NewBudget(
		1,
		CategoryFoods,
		decimal.RequireFromString("300.00"),
		time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	)

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start date", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), true},
		{"inside the period", time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC), true},
		{"noon of the end date", time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC), true},
		{"last second of the end date", time.Date(2026, time.September, 1, 23, 59, 59, 0, time.UTC), true},
		{"before the start date", time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC), false},
		{"after the end date", time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := budget.IsActiveAt(tc.at); got != tc.want {
				t.Fatalf("IsActiveAt(%s) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}
