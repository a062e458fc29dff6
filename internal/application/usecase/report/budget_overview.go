// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
)

// GetBudgetOverviewInput represents the input for the budget overview query.
type GetBudgetOverviewInput struct {
	UserID    uint
	Reference time.Time
}

// BudgetOverviewEntry represents one active budget with its recomputed
// consumption and progress.
type BudgetOverviewEntry struct {
	Budget   *entity.Budget       `json:"budget"`
	Progress BudgetProgressResult `json:"progress"`
}

// GetBudgetOverviewOutput represents the output of the budget overview query.
type GetBudgetOverviewOutput struct {
	Budgets []BudgetOverviewEntry `json:"budgets"`
}

// GetBudgetOverviewUseCase lists the budgets active at the reference date
// with their current amounts recomputed from the ledger.
type GetBudgetOverviewUseCase struct {
	budgetRepo adapter.BudgetRepository
	ledgerRepo LedgerRepository
}

// NewGetBudgetOverviewUseCase creates a new GetBudgetOverviewUseCase instance.
func NewGetBudgetOverviewUseCase(
	budgetRepo adapter.BudgetRepository,
	ledgerRepo LedgerRepository,
) *GetBudgetOverviewUseCase {
	return &GetBudgetOverviewUseCase{
		budgetRepo: budgetRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves active budgets and recomputes each one's current amount
// from the expense transactions of its category within the budget window.
// The stored current amount is derived data and is never trusted.
func (uc *GetBudgetOverviewUseCase) Execute(
	ctx context.Context,
	input GetBudgetOverviewInput,
) (*GetBudgetOverviewOutput, error) {
	out := &GetBudgetOverviewOutput{Budgets: []BudgetOverviewEntry{}}
	if input.UserID == 0 {
		return out, nil
	}

	budgets, err := uc.budgetRepo.FindActiveByUser(ctx, input.UserID, input.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to list active budgets: %w", err)
	}

	for _, budget := range budgets {
		// The budget window is date-inclusive on both ends.
		windowEnd := budget.EndDate.AddDate(0, 0, 1)
		spent, err := uc.ledgerRepo.SumCategoryAmount(
			ctx,
			input.UserID,
			budget.Category,
			entity.TransactionTypeExpense,
			budget.StartDate,
			windowEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to sum spending for budget %d: %w", budget.ID, err)
		}

		budget.CurrentAmount = spent
		out.Budgets = append(out.Budgets, BudgetOverviewEntry{
			Budget:   budget,
			Progress: BudgetProgress(budget, spent),
		})
	}

	return out, nil
}
