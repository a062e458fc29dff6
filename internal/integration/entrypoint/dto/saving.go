package dto

import (
	"time"

	"github.com/signance/backend/internal/application/usecase/report"
	"github.com/signance/backend/internal/domain/entity"
)

// CreateSavingRequest represents the request body for saving goal creation.
type CreateSavingRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Deadline     string `json:"deadline,omitempty"`
}

// UpdateSavingRequest represents the request body for saving goal update.
type UpdateSavingRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount *string `json:"target_amount,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

// SetSavingAmountRequest represents the request body for setting a goal's
// current amount.
type SetSavingAmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// SavingResponse represents a single saving goal in API responses.
type SavingResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      string    `json:"deadline,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingProgressResponse represents saving goal progress in API responses.
type SavingProgressResponse struct {
	Percent float64 `json:"percent"`
	Reached bool    `json:"reached"`
}

// SavingOverviewEntryResponse represents a saving goal with its progress.
type SavingOverviewEntryResponse struct {
	Goal     SavingResponse         `json:"goal"`
	Progress SavingProgressResponse `json:"progress"`
}

// SavingOverviewResponse represents the response for the savings overview.
type SavingOverviewResponse struct {
	Goals []SavingOverviewEntryResponse `json:"goals"`
}

// SavingListResponse represents the response for listing saving goals.
type SavingListResponse struct {
	Goals []SavingResponse `json:"goals"`
}

// ToSavingResponse converts a saving goal entity to its API representation.
func ToSavingResponse(goal *entity.SavingGoal) SavingResponse {
	response := SavingResponse{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
	if !goal.Deadline.IsZero() {
		response.Deadline = goal.Deadline.Format("2006-01-02")
	}
	return response
}

// ToSavingListResponse converts a list of saving goal entities to the list
// response shape.
func ToSavingListResponse(goals []*entity.SavingGoal) SavingListResponse {
	responses := make([]SavingResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToSavingResponse(goal)
	}
	return SavingListResponse{Goals: responses}
}

// ToSavingOverviewResponse converts the savings overview output to the API
// response shape.
func ToSavingOverviewResponse(output *report.GetSavingsOverviewOutput) SavingOverviewResponse {
	entries := make([]SavingOverviewEntryResponse, len(output.Goals))
	for i, entry := range output.Goals {
		entries[i] = SavingOverviewEntryResponse{
			Goal: ToSavingResponse(entry.Goal),
			Progress: SavingProgressResponse{
				Percent: entry.Progress.Percent,
				Reached: entry.Progress.Reached,
			},
		}
	}
	return SavingOverviewResponse{Goals: entries}
}
