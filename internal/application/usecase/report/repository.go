// Package report contains the financial reporting use cases: monthly and
// per-category spending, trailing month series and budget/savings progress.
// Everything in this package is a read-side projection over the ledger; it
// never mutates stored state.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

// LedgerRepository defines the read contract the reporting use cases consume.
// Implementations guarantee that "no matching rows" yields decimal.Zero, not
// an error; only storage failures propagate.
type LedgerRepository interface {
	// SumAmount returns the total amount of transactions of the given type
	// for the user within [start, end).
	SumAmount(
		ctx context.Context,
		userID uint,
		txType entity.TransactionType,
		start, end time.Time,
	) (decimal.Decimal, error)

	// SumAmountByCategory returns per-category totals of transactions of the
	// given type for the user within [start, end). Categories without
	// transactions are absent from the map.
	SumAmountByCategory(
		ctx context.Context,
		userID uint,
		txType entity.TransactionType,
		start, end time.Time,
	) (map[entity.Category]decimal.Decimal, error)

	// SumCategoryAmount returns the total amount of transactions of the given
	// type and category for the user within [start, end).
	SumCategoryAmount(
		ctx context.Context,
		userID uint,
		category entity.Category,
		txType entity.TransactionType,
		start, end time.Time,
	) (decimal.Decimal, error)
}
