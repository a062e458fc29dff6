// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
)

// GetTrailingSeriesInput represents the input for the trailing series query.
type GetTrailingSeriesInput struct {
	UserID    uint
	Reference time.Time
	Months    int
	Type      entity.TransactionType
}

// SeriesPoint represents the monthly total for one month of the series.
type SeriesPoint struct {
	Month  time.Time       `json:"month"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// GetTrailingSeriesOutput represents the output of the trailing series query.
// Points are ordered oldest first; the last point is the reference month.
type GetTrailingSeriesOutput struct {
	Type   entity.TransactionType `json:"type"`
	Points []SeriesPoint          `json:"points"`
}

// GetTrailingSeriesUseCase computes a fixed-length chronological sequence of
// monthly totals ending at the reference month.
type GetTrailingSeriesUseCase struct {
	ledgerRepo LedgerRepository
}

// NewGetTrailingSeriesUseCase creates a new GetTrailingSeriesUseCase instance.
func NewGetTrailingSeriesUseCase(ledgerRepo LedgerRepository) *GetTrailingSeriesUseCase {
	return &GetTrailingSeriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute computes one total per calendar month, walking back Months-1 months
// from the reference month. Year boundaries are handled by calendar month
// arithmetic. A zero UserID yields a series of zeros of the requested length.
func (uc *GetTrailingSeriesUseCase) Execute(
	ctx context.Context,
	input GetTrailingSeriesInput,
) (*GetTrailingSeriesOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, 0, input.Months)
	for i := input.Months - 1; i >= 0; i-- {
		start, end := monthBoundsBefore(input.Reference, i)

		amount := decimal.Zero
		if input.UserID != 0 {
			var err error
			amount, err = uc.ledgerRepo.SumAmount(ctx, input.UserID, input.Type, start, end)
			if err != nil {
				return nil, fmt.Errorf("failed to sum %s for %s: %w", input.Type, monthLabel(start), err)
			}
		}

		points = append(points, SeriesPoint{
			Month:  start,
			Label:  monthLabel(start),
			Amount: amount,
		})
	}

	return &GetTrailingSeriesOutput{
		Type:   input.Type,
		Points: points,
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetTrailingSeriesUseCase) validateInput(input GetTrailingSeriesInput) error {
	if input.Months < 1 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthCount,
			"months must be at least 1",
			domainerror.ErrInvalidMonthCount,
		)
	}

	if !input.Type.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"type must be income or expense",
			domainerror.ErrInvalidReportType,
		)
	}

	return nil
}
