// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
)

// GetSavingsOverviewInput represents the input for the savings overview query.
type GetSavingsOverviewInput struct {
	UserID uint
}

// SavingsOverviewEntry represents one saving goal with its progress.
type SavingsOverviewEntry struct {
	Goal     *entity.SavingGoal    `json:"goal"`
	Progress SavingsProgressResult `json:"progress"`
}

// GetSavingsOverviewOutput represents the output of the savings overview query.
type GetSavingsOverviewOutput struct {
	Goals []SavingsOverviewEntry `json:"goals"`
}

// GetSavingsOverviewUseCase lists the user's saving goals with their
// progress computed.
type GetSavingsOverviewUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewGetSavingsOverviewUseCase creates a new GetSavingsOverviewUseCase instance.
func NewGetSavingsOverviewUseCase(savingRepo adapter.SavingRepository) *GetSavingsOverviewUseCase {
	return &GetSavingsOverviewUseCase{
		savingRepo: savingRepo,
	}
}

// Execute retrieves the user's saving goals with progress applied. A zero
// UserID yields an empty overview.
func (uc *GetSavingsOverviewUseCase) Execute(
	ctx context.Context,
	input GetSavingsOverviewInput,
) (*GetSavingsOverviewOutput, error) {
	out := &GetSavingsOverviewOutput{Goals: []SavingsOverviewEntry{}}
	if input.UserID == 0 {
		return out, nil
	}

	goals, err := uc.savingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving goals: %w", err)
	}

	for _, goal := range goals {
		out.Goals = append(out.Goals, SavingsOverviewEntry{
			Goal:     goal,
			Progress: SavingsProgress(goal),
		})
	}

	return out, nil
}
