// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

// GetMonthlySpendingInput represents the input for the monthly spending query.
type GetMonthlySpendingInput struct {
	UserID    uint
	Reference time.Time
}

// GetMonthlySpendingOutput represents the output of the monthly spending query.
type GetMonthlySpendingOutput struct {
	Spending decimal.Decimal `json:"spending"`
	Income   decimal.Decimal `json:"income"`
	Month    time.Time       `json:"month"`
}

// GetMonthlySpendingUseCase computes total expense and income for the
// calendar month containing the reference date.
type GetMonthlySpendingUseCase struct {
	ledgerRepo LedgerRepository
}

// NewGetMonthlySpendingUseCase creates a new GetMonthlySpendingUseCase instance.
func NewGetMonthlySpendingUseCase(ledgerRepo LedgerRepository) *GetMonthlySpendingUseCase {
	return &GetMonthlySpendingUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute sums expense and income amounts for the reference month. A zero
// UserID identifies no one and yields zero totals rather than an error.
func (uc *GetMonthlySpendingUseCase) Execute(
	ctx context.Context,
	input GetMonthlySpendingInput,
) (*GetMonthlySpendingOutput, error) {
	start, end := monthBounds(input.Reference)

	out := &GetMonthlySpendingOutput{
		Spending: decimal.Zero,
		Income:   decimal.Zero,
		Month:    start,
	}
	if input.UserID == 0 {
		return out, nil
	}

	spending, err := uc.ledgerRepo.SumAmount(ctx, input.UserID, entity.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly spending: %w", err)
	}

	income, err := uc.ledgerRepo.SumAmount(ctx, input.UserID, entity.TransactionTypeIncome, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly income: %w", err)
	}

	out.Spending = spending
	out.Income = income
	return out, nil
}
