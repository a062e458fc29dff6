package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/signance/backend/internal/domain/entity"
	"github.com/signance/backend/internal/integration/persistence/model"
)

// openTestDB opens a per-test in-memory SQLite database and migrates the
// given models.
func openTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestBudgetRepositoryFindActiveByUser(t *testing.T) {
	db := openTestDB(t, &model.BudgetModel{})
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	budget := entity.NewBudget(
		1,
		entity.CategoryFoods,
		decimal.RequireFromString("300.00"),
		time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	)
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name   string
		at     time.Time
		active bool
	}{
		{"noon of the start date", time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC), true},
		{"midway through the period", time.Date(2026, time.August, 15, 9, 30, 0, 0, time.UTC), true},
		{"midnight of the end date", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), true},
		{"noon of the end date", time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC), true},
		{"last second of the end date", time.Date(2026, time.September, 1, 23, 59, 59, 0, time.UTC), true},
		{"day before the start date", time.Date(2026, time.July, 31, 23, 0, 0, 0, time.UTC), false},
		{"day after the end date", time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			budgets, err := repo.FindActiveByUser(ctx, 1, tc.at)
			if err != nil {
				t.Fatalf("find active: %v", err)
			}
			if got := len(budgets) == 1; got != tc.active {
				t.Fatalf("at %s: got %d active budgets, want active=%v", tc.at, len(budgets), tc.active)
			}
		})
	}
}

func TestBudgetRepositoryFindActiveByUserScopedToUser(t *testing.T) {
	db := openTestDB(t, &model.BudgetModel{})
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	budget := entity.NewBudget(
		7,
		entity.CategoryTransport,
		decimal.RequireFromString("100.00"),
		time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
	)
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("create: %v", err)
	}

	budgets, err := repo.FindActiveByUser(ctx, 8, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if len(budgets) != 0 {
		t.Fatalf("got %d budgets for a different user, want 0", len(budgets))
	}
}
