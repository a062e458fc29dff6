// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

// fakeLedger is an in-memory LedgerRepository for tests. It aggregates over a
// plain transaction slice with the same half-open window semantics the real
// repository implements in SQL.
type fakeLedger struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeLedger) SumAmount(
	_ context.Context,
	userID uint,
	txType entity.TransactionType,
	start, end time.Time,
) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}

	total := decimal.Zero
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Type == txType && inWindow(tx.Date, start, end) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (f *fakeLedger) SumAmountByCategory(
	_ context.Context,
	userID uint,
	txType entity.TransactionType,
	start, end time.Time,
) (map[entity.Category]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}

	totals := make(map[entity.Category]decimal.Decimal)
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Type == txType && inWindow(tx.Date, start, end) {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}
	return totals, nil
}

func (f *fakeLedger) SumCategoryAmount(
	_ context.Context,
	userID uint,
	category entity.Category,
	txType entity.TransactionType,
	start, end time.Time,
) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}

	total := decimal.Zero
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Category == category && tx.Type == txType && inWindow(tx.Date, start, end) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func inWindow(date, start, end time.Time) bool {
	return !date.Before(start) && date.Before(end)
}

// tx is a shorthand constructor for test transactions.
func tx(userID uint, amount string, category entity.Category, txType entity.TransactionType, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		UserID:   userID,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Type:     txType,
		Date:     date,
	}
}
