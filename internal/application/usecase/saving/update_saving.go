// Package saving contains saving-goal-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

// UpdateSavingInput represents the input for saving goal updates. Nil fields
// keep their current value.
type UpdateSavingInput struct {
	SavingID     uint
	UserID       uint
	Name         *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
}

// UpdateSavingOutput represents the output of saving goal updates.
type UpdateSavingOutput struct {
	Goal *entity.SavingGoal
}

// UpdateSavingUseCase handles saving goal update logic.
type UpdateSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewUpdateSavingUseCase creates a new UpdateSavingUseCase instance.
func NewUpdateSavingUseCase(savingRepo adapter.SavingRepository) *UpdateSavingUseCase {
	return &UpdateSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving goal update.
func (uc *UpdateSavingUseCase) Execute(ctx context.Context, input UpdateSavingInput) (*UpdateSavingOutput, error) {
	goal, err := uc.findOwned(ctx, input.SavingID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeMissingSavingGoalName,
				"saving goal name is required",
				domainerror.ErrMissingSavingGoalName,
			)
		}
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeInvalidSavingGoalTarget,
				"target amount must be positive",
				domainerror.ErrInvalidSavingGoalTarget,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.Deadline != nil {
		goal.Deadline = *input.Deadline
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.savingRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update saving goal: %w", err)
	}

	return &UpdateSavingOutput{Goal: goal}, nil
}

// findOwned loads a goal and enforces ownership. Shared with SetAmount.
func (uc *UpdateSavingUseCase) findOwned(ctx context.Context, savingID, userID uint) (*entity.SavingGoal, error) {
	return findOwnedGoal(ctx, uc.savingRepo, savingID, userID)
}

func findOwnedGoal(ctx context.Context, repo adapter.SavingRepository, savingID, userID uint) (*entity.SavingGoal, error) {
	goal, err := repo.FindByID(ctx, savingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingGoalNotFound) {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeSavingGoalNotFound,
				"saving goal not found",
				domainerror.ErrSavingGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeNotAuthorizedSavingGoal,
			"not authorized to modify this saving goal",
			domainerror.ErrNotAuthorizedToModifySavingGoal,
		)
	}

	return goal, nil
}
