// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uint]*entity.Budget
	nextID  uint
	deleted []uint
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: map[uint]*entity.Budget{}, nextID: 1}
}

func (f *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	budget.ID = f.nextID
	f.nextID++
	f.budgets[budget.ID] = budget
	return nil
}

func (f *fakeBudgetRepo) FindByID(_ context.Context, id uint) (*entity.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return b, nil
}

func (f *fakeBudgetRepo) FindByUser(_ context.Context, userID uint) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBudgetRepo) FindActiveByUser(_ context.Context, userID uint, at time.Time) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == userID && !at.Before(b.StartDate) && !at.After(b.EndDate) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	f.budgets[budget.ID] = budget
	return nil
}

func (f *fakeBudgetRepo) Delete(_ context.Context, id uint) error {
	delete(f.budgets, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func august() (time.Time, time.Time) {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
}

func TestCreateBudgetUseCase(t *testing.T) {
	start, end := august()

	t.Run("creates a budget with a zero current amount", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewCreateBudgetUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Budget.ID != 1 {
			t.Errorf("expected assigned ID 1, got %d", out.Budget.ID)
		}
		if !out.Budget.CurrentAmount.IsZero() {
			t.Errorf("expected zero current amount, got %s", out.Budget.CurrentAmount)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo())

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.Category("lottery"),
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   end,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeInvalidBudgetCategory)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo())

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("-1.00"),
			StartDate: start,
			EndDate:   end,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeInvalidBudgetAmount)
	})

	t.Run("rejects an inverted period", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo())

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: end,
			EndDate:   start,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeInvalidBudgetPeriod)
	})

	t.Run("rejects a zero-length period", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo())

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   start,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeInvalidBudgetPeriod)
	})
}

func TestUpdateBudgetUseCase(t *testing.T) {
	start, end := august()

	seed := func(repo *fakeBudgetRepo) *entity.Budget {
		out, err := NewCreateBudgetUseCase(repo).Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		return out.Budget
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		budget := seed(repo)
		uc := NewUpdateBudgetUseCase(repo)

		amount := decimal.RequireFromString("600.00")
		out, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: budget.ID,
			UserID:   1,
			Amount:   &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Budget.Amount.Equal(amount) {
			t.Errorf("expected amount 600.00, got %s", out.Budget.Amount)
		}
		if out.Budget.Category != entity.CategoryFoods {
			t.Errorf("category should be untouched, got %s", out.Budget.Category)
		}
		if !out.Budget.StartDate.Equal(start) {
			t.Errorf("start date should be untouched, got %s", out.Budget.StartDate)
		}
	})

	t.Run("rejects an update that inverts the period", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		budget := seed(repo)
		uc := NewUpdateBudgetUseCase(repo)

		late := end.AddDate(0, 1, 0)
		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:  budget.ID,
			UserID:    1,
			StartDate: &late,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeInvalidBudgetPeriod)
	})

	t.Run("refuses another user's budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		budget := seed(repo)
		uc := NewUpdateBudgetUseCase(repo)

		amount := decimal.RequireFromString("600.00")
		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: budget.ID,
			UserID:   2,
			Amount:   &amount,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeNotAuthorizedBudget)
	})

	t.Run("reports a missing budget", func(t *testing.T) {
		uc := NewUpdateBudgetUseCase(newFakeBudgetRepo())

		amount := decimal.RequireFromString("600.00")
		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: 999,
			UserID:   1,
			Amount:   &amount,
		})
		assertBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})
}

func TestDeleteBudgetUseCase(t *testing.T) {
	start, end := august()

	t.Run("deletes the owner's budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		out, _ := NewCreateBudgetUseCase(repo).Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   end,
		})
		uc := NewDeleteBudgetUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteBudgetInput{BudgetID: out.Budget.ID, UserID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 {
			t.Errorf("expected one deletion, got %v", repo.deleted)
		}
	})

	t.Run("refuses another user's budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		out, _ := NewCreateBudgetUseCase(repo).Execute(context.Background(), CreateBudgetInput{
			UserID:    1,
			Category:  entity.CategoryFoods,
			Amount:    decimal.RequireFromString("500.00"),
			StartDate: start,
			EndDate:   end,
		})
		uc := NewDeleteBudgetUseCase(repo)

		err := uc.Execute(context.Background(), DeleteBudgetInput{BudgetID: out.Budget.ID, UserID: 2})
		assertBudgetCode(t, err, domainerror.ErrCodeNotAuthorizedBudget)
	})
}

func assertBudgetCode(t *testing.T, err error, code domainerror.BudgetErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T: %v", err, err)
	}
	if budgetErr.Code != code {
		t.Errorf("expected code %s, got %s", code, budgetErr.Code)
	}
}
