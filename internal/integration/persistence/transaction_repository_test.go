package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	"github.com/signance/backend/internal/integration/persistence/model"
)

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uint, amount string, date time.Time) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(
		userID,
		decimal.RequireFromString(amount),
		entity.CategoryFoods,
		entity.TransactionTypeExpense,
		"groceries",
		date,
	)
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return txn
}

func TestTransactionRepositoryFindByFilterDateBounds(t *testing.T) {
	db := openTestDB(t, &model.TransactionModel{})
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	// Transactions carry full timestamps even when filters name bare dates.
	inRange := seedTransaction(t, repo, 1, "25.00", time.Date(2026, time.August, 10, 15, 30, 0, 0, time.UTC))
	onEndDate := seedTransaction(t, repo, 1, "12.50", time.Date(2026, time.August, 20, 18, 45, 0, 0, time.UTC))
	seedTransaction(t, repo, 1, "40.00", time.Date(2026, time.August, 21, 8, 0, 0, 0, time.UTC))

	startDate := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)

	t.Run("end date includes same-day transactions with a clock time", func(t *testing.T) {
		txns, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    1,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			t.Fatalf("find by filter: %v", err)
		}
		if len(txns) != 2 {
			t.Fatalf("got %d transactions, want 2", len(txns))
		}
		// Newest first.
		if txns[0].ID != onEndDate.ID || txns[1].ID != inRange.ID {
			t.Fatalf("got IDs %d, %d; want %d, %d", txns[0].ID, txns[1].ID, onEndDate.ID, inRange.ID)
		}
	})

	t.Run("end date before the transaction's day excludes it", func(t *testing.T) {
		earlier := time.Date(2026, time.August, 19, 0, 0, 0, 0, time.UTC)
		txns, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    1,
			StartDate: &startDate,
			EndDate:   &earlier,
		})
		if err != nil {
			t.Fatalf("find by filter: %v", err)
		}
		if len(txns) != 1 {
			t.Fatalf("got %d transactions, want 1", len(txns))
		}
		if txns[0].ID != inRange.ID {
			t.Fatalf("got ID %d, want %d", txns[0].ID, inRange.ID)
		}
	})
}
