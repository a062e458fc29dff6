// Package saving contains saving-goal-related use cases.
package saving

import (
	"context"
	"fmt"

	"github.com/signance/backend/internal/application/adapter"
)

// DeleteSavingInput represents the input for saving goal deletion.
type DeleteSavingInput struct {
	SavingID uint
	UserID   uint
}

// DeleteSavingUseCase handles saving goal deletion logic.
type DeleteSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewDeleteSavingUseCase creates a new DeleteSavingUseCase instance.
func NewDeleteSavingUseCase(savingRepo adapter.SavingRepository) *DeleteSavingUseCase {
	return &DeleteSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving goal deletion.
func (uc *DeleteSavingUseCase) Execute(ctx context.Context, input DeleteSavingInput) error {
	if _, err := findOwnedGoal(ctx, uc.savingRepo, input.SavingID, input.UserID); err != nil {
		return err
	}

	if err := uc.savingRepo.Delete(ctx, input.SavingID); err != nil {
		return fmt.Errorf("failed to delete saving goal: %w", err)
	}

	return nil
}
