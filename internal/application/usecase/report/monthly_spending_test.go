// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

func TestGetMonthlySpending(t *testing.T) {
	now := time.Date(2025, time.May, 14, 9, 30, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	ledger := &fakeLedger{transactions: []*entity.Transaction{
		tx(1, "50.00", entity.CategoryFoods, entity.TransactionTypeExpense, now),
		tx(1, "30.00", entity.CategoryTransport, entity.TransactionTypeExpense, now),
		tx(1, "1000.00", entity.CategoryOther, entity.TransactionTypeIncome, now),
		tx(1, "99.99", entity.CategoryFoods, entity.TransactionTypeExpense, lastMonth),
		tx(2, "500.00", entity.CategoryFoods, entity.TransactionTypeExpense, now),
	}}
	uc := NewGetMonthlySpendingUseCase(ledger)

	t.Run("sums expenses and income of the reference month only", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetMonthlySpendingInput{UserID: 1, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("80.00"); !out.Spending.Equal(want) {
			t.Errorf("spending = %s, want %s", out.Spending, want)
		}
		if want := decimal.RequireFromString("1000.00"); !out.Income.Equal(want) {
			t.Errorf("income = %s, want %s", out.Income, want)
		}
	})

	t.Run("user with no transactions gets zero", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetMonthlySpendingInput{UserID: 42, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Spending.IsZero() || !out.Income.IsZero() {
			t.Errorf("spending = %s, income = %s, want both zero", out.Spending, out.Income)
		}
	})

	t.Run("absent user yields zero without touching the store", func(t *testing.T) {
		erroring := NewGetMonthlySpendingUseCase(&fakeLedger{err: errors.New("store down")})

		out, err := erroring.Execute(context.Background(), GetMonthlySpendingInput{UserID: 0, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Spending.IsZero() {
			t.Errorf("spending = %s, want zero", out.Spending)
		}
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		first, err := uc.Execute(context.Background(), GetMonthlySpendingInput{UserID: 1, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), GetMonthlySpendingInput{UserID: 1, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.Spending.Equal(second.Spending) || !first.Income.Equal(second.Income) {
			t.Errorf("results differ between calls: %v vs %v", first, second)
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		erroring := NewGetMonthlySpendingUseCase(&fakeLedger{err: storeErr})

		_, err := erroring.Execute(context.Background(), GetMonthlySpendingInput{UserID: 1, Reference: now})
		if !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want wrapped %v", err, storeErr)
		}
	})
}
