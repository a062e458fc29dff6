// Package report contains the financial reporting use cases.
package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

func TestBudgetProgress(t *testing.T) {
	tests := []struct {
		name            string
		ceiling         string
		spent           string
		wantRemaining   string
		wantPercentUsed float64
	}{
		{
			name:            "partially consumed",
			ceiling:         "100.00",
			spent:           "25.00",
			wantRemaining:   "75.00",
			wantPercentUsed: 25.0,
		},
		{
			name:            "overspent budget goes negative",
			ceiling:         "40.00",
			spent:           "50.00",
			wantRemaining:   "-10.00",
			wantPercentUsed: 125.0,
		},
		{
			name:            "zero ceiling yields zero percent",
			ceiling:         "0",
			spent:           "50.00",
			wantRemaining:   "-50.00",
			wantPercentUsed: 0,
		},
		{
			name:            "untouched budget",
			ceiling:         "200.00",
			spent:           "0",
			wantRemaining:   "200.00",
			wantPercentUsed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := &entity.Budget{
				Category: entity.CategoryFoods,
				Amount:   decimal.RequireFromString(tt.ceiling),
			}

			got := BudgetProgress(budget, decimal.RequireFromString(tt.spent))

			if want := decimal.RequireFromString(tt.wantRemaining); !got.Remaining.Equal(want) {
				t.Errorf("remaining = %s, want %s", got.Remaining, want)
			}
			if got.PercentUsed != tt.wantPercentUsed {
				t.Errorf("percentUsed = %v, want %v", got.PercentUsed, tt.wantPercentUsed)
			}
		})
	}
}

func TestSavingsProgress(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		current     string
		wantPercent float64
		wantReached bool
	}{
		{
			name:        "halfway there",
			target:      "1000.00",
			current:     "500.00",
			wantPercent: 50.0,
			wantReached: false,
		},
		{
			name:        "exactly reached",
			target:      "1000.00",
			current:     "1000.00",
			wantPercent: 100.0,
			wantReached: true,
		},
		{
			name:        "exceeding the target is not capped",
			target:      "1000.00",
			current:     "1200.00",
			wantPercent: 120.0,
			wantReached: true,
		},
		{
			name:        "corrupted zero target yields zero percent",
			target:      "0",
			current:     "500.00",
			wantPercent: 0,
			wantReached: true,
		},
		{
			name:        "corrupted negative target yields zero percent",
			target:      "-10.00",
			current:     "0",
			wantPercent: 0,
			wantReached: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &entity.SavingGoal{
				TargetAmount:  decimal.RequireFromString(tt.target),
				CurrentAmount: decimal.RequireFromString(tt.current),
			}

			got := SavingsProgress(goal)

			if got.Percent != tt.wantPercent {
				t.Errorf("percent = %v, want %v", got.Percent, tt.wantPercent)
			}
			if got.Reached != tt.wantReached {
				t.Errorf("reached = %v, want %v", got.Reached, tt.wantReached)
			}
			if got.Reached != goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
				t.Error("reached must equal current >= target")
			}
		})
	}
}
