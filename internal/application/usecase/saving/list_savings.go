// Package saving contains saving-goal-related use cases.
package saving

import (
	"context"
	"fmt"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
)

// ListSavingsInput represents the input for listing saving goals.
type ListSavingsInput struct {
	UserID uint
}

// ListSavingsOutput represents the output of listing saving goals.
type ListSavingsOutput struct {
	Goals []*entity.SavingGoal
}

// ListSavingsUseCase handles listing a user's saving goals.
type ListSavingsUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(savingRepo adapter.SavingRepository) *ListSavingsUseCase {
	return &ListSavingsUseCase{
		savingRepo: savingRepo,
	}
}

// Execute lists the user's saving goals, oldest first.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, input ListSavingsInput) (*ListSavingsOutput, error) {
	goals, err := uc.savingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving goals: %w", err)
	}

	return &ListSavingsOutput{Goals: goals}, nil
}
