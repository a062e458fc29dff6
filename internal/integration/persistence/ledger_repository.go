package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/signance/backend/internal/application/usecase/report"
	"github.com/signance/backend/internal/domain/entity"
)

// ledgerRepository implements the report.LedgerRepository interface.
//
// All aggregation runs in SQL so the totals never depend on pagination. The
// queries stick to plain SUM/GROUP BY and half-open date predicates, which
// behave the same on sqlite and postgres.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) report.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// SumAmount returns the total amount of transactions of the given type for
// the user within [start, end).
func (r *ledgerRepository) SumAmount(
	ctx context.Context,
	userID uint,
	txType entity.TransactionType,
	start, end time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("type = ?", string(txType)).
		Where("date >= ? AND date < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	return result.Total, nil
}

// SumAmountByCategory returns per-category totals of transactions of the
// given type for the user within [start, end).
func (r *ledgerRepository) SumAmountByCategory(
	ctx context.Context,
	userID uint,
	txType entity.TransactionType,
	start, end time.Time,
) (map[entity.Category]decimal.Decimal, error) {
	var rows []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("category, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("type = ?", string(txType)).
		Where("date >= ? AND date < ?", start, end).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum amounts by category: %w", err)
	}

	totals := make(map[entity.Category]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[entity.Category(row.Category)] = row.Total
	}
	return totals, nil
}

// SumCategoryAmount returns the total amount of transactions of the given
// type and category for the user within [start, end).
func (r *ledgerRepository) SumCategoryAmount(
	ctx context.Context,
	userID uint,
	category entity.Category,
	txType entity.TransactionType,
	start, end time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("type = ?", string(txType)).
		Where("category = ?", string(category)).
		Where("date >= ? AND date < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum category amount: %w", err)
	}

	return result.Total, nil
}
