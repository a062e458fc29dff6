package dto

import (
	"time"

	"github.com/signance/backend/internal/domain/entity"
	"github.com/signance/backend/internal/application/usecase/report"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category  string `json:"category" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount    *string `json:"amount,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	CurrentAmount string    `json:"current_amount"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetProgressResponse represents budget consumption in API responses.
type BudgetProgressResponse struct {
	Remaining   string  `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
}

// BudgetOverviewEntryResponse represents an active budget with its progress.
type BudgetOverviewEntryResponse struct {
	Budget   BudgetResponse         `json:"budget"`
	Progress BudgetProgressResponse `json:"progress"`
}

// BudgetOverviewResponse represents the response for the budget overview.
type BudgetOverviewResponse struct {
	Budgets []BudgetOverviewEntryResponse `json:"budgets"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget entity to its API representation.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:            budget.ID,
		UserID:        budget.UserID,
		Category:      string(budget.Category),
		Amount:        budget.Amount.StringFixed(2),
		CurrentAmount: budget.CurrentAmount.StringFixed(2),
		StartDate:     budget.StartDate.Format("2006-01-02"),
		EndDate:       budget.EndDate.Format("2006-01-02"),
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budget entities to the list
// response shape.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{Budgets: responses}
}

// ToBudgetOverviewResponse converts the budget overview output to the API
// response shape.
func ToBudgetOverviewResponse(output *report.GetBudgetOverviewOutput) BudgetOverviewResponse {
	entries := make([]BudgetOverviewEntryResponse, len(output.Budgets))
	for i, entry := range output.Budgets {
		entries[i] = BudgetOverviewEntryResponse{
			Budget: ToBudgetResponse(entry.Budget),
			Progress: BudgetProgressResponse{
				Remaining:   entry.Progress.Remaining.StringFixed(2),
				PercentUsed: entry.Progress.PercentUsed,
			},
		}
	}
	return BudgetOverviewResponse{Budgets: entries}
}
