// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

// GetCategorySpendingInput represents the input for the category spending query.
type GetCategorySpendingInput struct {
	UserID    uint
	Reference time.Time
}

// CategorySpending represents the expense total of a single category.
type CategorySpending struct {
	Category entity.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// GetCategorySpendingOutput represents the output of the category spending query.
// Categories always appear in their canonical order with zero amounts for
// categories without expenses, so positional consumers can rely on the shape.
type GetCategorySpendingOutput struct {
	Month      time.Time          `json:"month"`
	Categories []CategorySpending `json:"categories"`
}

// GetCategorySpendingUseCase computes per-category expense totals for the
// calendar month containing the reference date.
type GetCategorySpendingUseCase struct {
	ledgerRepo LedgerRepository
}

// NewGetCategorySpendingUseCase creates a new GetCategorySpendingUseCase instance.
func NewGetCategorySpendingUseCase(ledgerRepo LedgerRepository) *GetCategorySpendingUseCase {
	return &GetCategorySpendingUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute sums expense amounts per category for the reference month. A zero
// UserID yields an all-zero breakdown.
func (uc *GetCategorySpendingUseCase) Execute(
	ctx context.Context,
	input GetCategorySpendingInput,
) (*GetCategorySpendingOutput, error) {
	start, end := monthBounds(input.Reference)

	totals := map[entity.Category]decimal.Decimal{}
	if input.UserID != 0 {
		var err error
		totals, err = uc.ledgerRepo.SumAmountByCategory(ctx, input.UserID, entity.TransactionTypeExpense, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum category spending: %w", err)
		}
	}

	categories := make([]CategorySpending, 0, len(entity.Categories()))
	for _, category := range entity.Categories() {
		amount, ok := totals[category]
		if !ok {
			amount = decimal.Zero
		}
		categories = append(categories, CategorySpending{
			Category: category,
			Amount:   amount,
		})
	}

	return &GetCategorySpendingOutput{
		Month:      start,
		Categories: categories,
	}, nil
}
