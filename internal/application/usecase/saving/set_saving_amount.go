// Package saving contains saving-goal-related use cases.
package saving

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

// SetSavingAmountInput represents the input for setting a goal's current amount.
type SetSavingAmountInput struct {
	SavingID uint
	UserID   uint
	Amount   decimal.Decimal
}

// SetSavingAmountOutput represents the output of setting a goal's current amount.
type SetSavingAmountOutput struct {
	Goal *entity.SavingGoal
}

// SetSavingAmountUseCase handles explicit updates of a goal's current amount.
// The current amount is user-set, never derived from transactions, and may
// exceed the target.
type SetSavingAmountUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewSetSavingAmountUseCase creates a new SetSavingAmountUseCase instance.
func NewSetSavingAmountUseCase(savingRepo adapter.SavingRepository) *SetSavingAmountUseCase {
	return &SetSavingAmountUseCase{
		savingRepo: savingRepo,
	}
}

// Execute sets the goal's current amount.
func (uc *SetSavingAmountUseCase) Execute(ctx context.Context, input SetSavingAmountInput) (*SetSavingAmountOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeInvalidSavingGoalAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidSavingGoalAmount,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.savingRepo, input.SavingID, input.UserID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = input.Amount
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.savingRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update saving goal: %w", err)
	}

	return &SetSavingAmountOutput{Goal: goal}, nil
}
