package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/signance/backend/internal/application/usecase/report"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
	"github.com/signance/backend/internal/integration/entrypoint/dto"
	"github.com/signance/backend/internal/integration/entrypoint/middleware"
)

// defaultTrendMonths is the series length used when the months query
// parameter is absent.
const defaultTrendMonths = 6

// DashboardController handles the reporting endpoints.
type DashboardController struct {
	monthlySpendingUseCase  *report.GetMonthlySpendingUseCase
	categorySpendingUseCase *report.GetCategorySpendingUseCase
	trailingSeriesUseCase   *report.GetTrailingSeriesUseCase
	budgetOverviewUseCase   *report.GetBudgetOverviewUseCase
	savingsOverviewUseCase  *report.GetSavingsOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	monthlySpendingUseCase *report.GetMonthlySpendingUseCase,
	categorySpendingUseCase *report.GetCategorySpendingUseCase,
	trailingSeriesUseCase *report.GetTrailingSeriesUseCase,
	budgetOverviewUseCase *report.GetBudgetOverviewUseCase,
	savingsOverviewUseCase *report.GetSavingsOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		monthlySpendingUseCase:  monthlySpendingUseCase,
		categorySpendingUseCase: categorySpendingUseCase,
		trailingSeriesUseCase:   trailingSeriesUseCase,
		budgetOverviewUseCase:   budgetOverviewUseCase,
		savingsOverviewUseCase:  savingsOverviewUseCase,
	}
}

// Summary handles GET /dashboard/summary requests. An optional date query
// parameter (YYYY-MM-DD) selects the month; it defaults to today.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	output, err := c.monthlySpendingUseCase.Execute(ctx.Request.Context(), report.GetMonthlySpendingInput{
		UserID:    userID,
		Reference: reference,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// Categories handles GET /dashboard/categories requests.
func (c *DashboardController) Categories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	output, err := c.categorySpendingUseCase.Execute(ctx.Request.Context(), report.GetCategorySpendingInput{
		UserID:    userID,
		Reference: reference,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Trends handles GET /dashboard/trends requests. The months query parameter
// sets the series length and type selects expense or income totals.
func (c *DashboardController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	months := defaultTrendMonths
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
				Code:  string(domainerror.ErrCodeInvalidMonthCount),
			})
			return
		}
		months = parsed
	}

	txType := entity.TransactionTypeExpense
	if typeStr := ctx.Query("type"); typeStr != "" {
		txType = entity.TransactionType(typeStr)
	}

	output, err := c.trailingSeriesUseCase.Execute(ctx.Request.Context(), report.GetTrailingSeriesInput{
		UserID:    userID,
		Reference: reference,
		Months:    months,
		Type:      txType,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Budgets handles GET /dashboard/budgets requests.
func (c *DashboardController) Budgets(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	output, err := c.budgetOverviewUseCase.Execute(ctx.Request.Context(), report.GetBudgetOverviewInput{
		UserID:    userID,
		Reference: reference,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(output))
}

// Savings handles GET /dashboard/savings requests.
func (c *DashboardController) Savings(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.savingsOverviewUseCase.Execute(ctx.Request.Context(), report.GetSavingsOverviewInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingOverviewResponse(output))
}

// handleReportError handles reporting errors and returns appropriate HTTP responses.
func (c *DashboardController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReferenceDate,
		domainerror.ErrCodeInvalidMonthCount,
		domainerror.ErrCodeInvalidReportType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseReferenceDate parses the optional date query parameter (YYYY-MM-DD),
// defaulting to the current UTC date. The default is truncated to midnight so
// date-bounded lookups behave the same as an explicit date parameter.
// It writes a 400 response on failure.
func parseReferenceDate(ctx *gin.Context) (time.Time, bool) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		return entity.DateOf(time.Now().UTC()), true
	}

	reference, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReferenceDate),
		})
		return time.Time{}, false
	}
	return reference, true
}
