// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(context.Context, *entity.Budget) error        { return nil }
func (f *fakeBudgetRepo) FindByID(context.Context, uint) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) Delete(context.Context, uint) error           { return nil }

func (f *fakeBudgetRepo) FindByUser(_ context.Context, userID uint) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) FindActiveByUser(_ context.Context, userID uint, at time.Time) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID && b.IsActiveAt(at) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSavingRepo struct {
	goals []*entity.SavingGoal
}

func (f *fakeSavingRepo) Create(context.Context, *entity.SavingGoal) error { return nil }
func (f *fakeSavingRepo) FindByID(context.Context, uint) (*entity.SavingGoal, error) {
	return nil, nil
}
func (f *fakeSavingRepo) Update(context.Context, *entity.SavingGoal) error { return nil }
func (f *fakeSavingRepo) Delete(context.Context, uint) error               { return nil }

func (f *fakeSavingRepo) FindByUser(_ context.Context, userID uint) ([]*entity.SavingGoal, error) {
	var out []*entity.SavingGoal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func TestGetBudgetOverview(t *testing.T) {
	now := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)

	budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{
		{
			ID:        1,
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("40.00"),
			StartDate: monthStart,
			EndDate:   monthEnd,
			// Stale persisted value; the overview must recompute it.
			CurrentAmount: decimal.RequireFromString("7.77"),
		},
		{
			ID:        2,
			UserID:    1,
			Category:  entity.CategoryEducation,
			Amount:    decimal.RequireFromString("300.00"),
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
	ledger := &fakeLedger{transactions: []*entity.Transaction{
		tx(1, "50.00", entity.CategoryFoods, entity.TransactionTypeExpense, now),
		tx(1, "15.00", entity.CategoryTransport, entity.TransactionTypeExpense, now),
	}}

	uc := NewGetBudgetOverviewUseCase(budgetRepo, ledger)

	t.Run("recomputes consumption of active budgets from the ledger", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetBudgetOverviewInput{UserID: 1, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Budgets) != 1 {
			t.Fatalf("got %d budgets, want 1 active", len(out.Budgets))
		}

		entry := out.Budgets[0]
		if entry.Budget.ID != 1 {
			t.Errorf("budget ID = %d, want 1", entry.Budget.ID)
		}
		if want := decimal.RequireFromString("50.00"); !entry.Budget.CurrentAmount.Equal(want) {
			t.Errorf("current amount = %s, want recomputed %s", entry.Budget.CurrentAmount, want)
		}
		if want := decimal.RequireFromString("-10.00"); !entry.Progress.Remaining.Equal(want) {
			t.Errorf("remaining = %s, want %s", entry.Progress.Remaining, want)
		}
		if entry.Progress.PercentUsed != 125.0 {
			t.Errorf("percentUsed = %v, want 125.0", entry.Progress.PercentUsed)
		}
	})

	t.Run("absent user gets an empty overview", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetBudgetOverviewInput{UserID: 0, Reference: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Budgets) != 0 {
			t.Errorf("got %d budgets, want 0", len(out.Budgets))
		}
	})
}

func TestGetSavingsOverview(t *testing.T) {
	savingRepo := &fakeSavingRepo{goals: []*entity.SavingGoal{
		{
			ID:            1,
			UserID:        1,
			Name:          "emergency fund",
			TargetAmount:  decimal.RequireFromString("1000.00"),
			CurrentAmount: decimal.RequireFromString("250.00"),
		},
		{
			ID:            2,
			UserID:        1,
			Name:          "new laptop",
			TargetAmount:  decimal.RequireFromString("800.00"),
			CurrentAmount: decimal.RequireFromString("800.00"),
		},
	}}

	uc := NewGetSavingsOverviewUseCase(savingRepo)

	out, err := uc.Execute(context.Background(), GetSavingsOverviewInput{UserID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(out.Goals))
	}

	if out.Goals[0].Progress.Percent != 25.0 || out.Goals[0].Progress.Reached {
		t.Errorf("goal 1 progress = %+v, want 25%% unreached", out.Goals[0].Progress)
	}
	if out.Goals[1].Progress.Percent != 100.0 || !out.Goals[1].Progress.Reached {
		t.Errorf("goal 2 progress = %+v, want 100%% reached", out.Goals[1].Progress)
	}
}
