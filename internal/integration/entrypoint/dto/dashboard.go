package dto

import (
	"github.com/signance/backend/internal/application/usecase/report"
)

// MonthlySummaryResponse represents the monthly spending summary.
type MonthlySummaryResponse struct {
	Month    string `json:"month"`
	Spending string `json:"spending"`
	Income   string `json:"income"`
}

// CategorySpendingResponse represents one category's expense total.
type CategorySpendingResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// CategoryBreakdownResponse represents the per-category monthly breakdown.
type CategoryBreakdownResponse struct {
	Month      string                     `json:"month"`
	Categories []CategorySpendingResponse `json:"categories"`
}

// TrendPointResponse represents one month of the trailing series.
type TrendPointResponse struct {
	Month  string `json:"month"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// TrendsResponse represents the trailing monthly series.
type TrendsResponse struct {
	Type   string               `json:"type"`
	Points []TrendPointResponse `json:"points"`
}

// ToMonthlySummaryResponse converts the monthly spending output to the API
// response shape.
func ToMonthlySummaryResponse(output *report.GetMonthlySpendingOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:    output.Month.Format("2006-01"),
		Spending: output.Spending.StringFixed(2),
		Income:   output.Income.StringFixed(2),
	}
}

// ToCategoryBreakdownResponse converts the category spending output to the
// API response shape.
func ToCategoryBreakdownResponse(output *report.GetCategorySpendingOutput) CategoryBreakdownResponse {
	categories := make([]CategorySpendingResponse, len(output.Categories))
	for i, item := range output.Categories {
		categories[i] = CategorySpendingResponse{
			Category: string(item.Category),
			Amount:   item.Amount.StringFixed(2),
		}
	}
	return CategoryBreakdownResponse{
		Month:      output.Month.Format("2006-01"),
		Categories: categories,
	}
}

// ToTrendsResponse converts the trailing series output to the API response
// shape.
func ToTrendsResponse(output *report.GetTrailingSeriesOutput) TrendsResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = TrendPointResponse{
			Month:  point.Month.Format("2006-01"),
			Label:  point.Label,
			Amount: point.Amount.StringFixed(2),
		}
	}
	return TrendsResponse{
		Type:   string(output.Type),
		Points: points,
	}
}
