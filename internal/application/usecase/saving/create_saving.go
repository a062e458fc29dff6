// Package saving contains saving-goal-related use cases.
package saving

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

// CreateSavingInput represents the input for saving goal creation.
type CreateSavingInput struct {
	UserID       uint
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// CreateSavingOutput represents the output of saving goal creation.
type CreateSavingOutput struct {
	Goal *entity.SavingGoal
}

// CreateSavingUseCase handles saving goal creation logic.
type CreateSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewCreateSavingUseCase creates a new CreateSavingUseCase instance.
func NewCreateSavingUseCase(savingRepo adapter.SavingRepository) *CreateSavingUseCase {
	return &CreateSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving goal creation. Goals start with a zero current
// amount.
func (uc *CreateSavingUseCase) Execute(ctx context.Context, input CreateSavingInput) (*CreateSavingOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeMissingSavingGoalName,
			"saving goal name is required",
			domainerror.ErrMissingSavingGoalName,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeInvalidSavingGoalTarget,
			"target amount must be positive",
			domainerror.ErrInvalidSavingGoalTarget,
		)
	}

	goal := entity.NewSavingGoal(input.UserID, input.Name, input.TargetAmount, input.Deadline)

	if err := uc.savingRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create saving goal: %w", err)
	}

	return &CreateSavingOutput{Goal: goal}, nil
}
