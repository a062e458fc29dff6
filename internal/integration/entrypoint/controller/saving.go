package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/application/usecase/saving"
	domainerror "github.com/signance/backend/internal/domain/error"
	"github.com/signance/backend/internal/integration/entrypoint/dto"
	"github.com/signance/backend/internal/integration/entrypoint/middleware"
)

// SavingController handles saving goal endpoints.
type SavingController struct {
	createUseCase    *saving.CreateSavingUseCase
	listUseCase      *saving.ListSavingsUseCase
	updateUseCase    *saving.UpdateSavingUseCase
	setAmountUseCase *saving.SetSavingAmountUseCase
	deleteUseCase    *saving.DeleteSavingUseCase
}

// NewSavingController creates a new saving controller instance.
func NewSavingController(
	createUseCase *saving.CreateSavingUseCase,
	listUseCase *saving.ListSavingsUseCase,
	updateUseCase *saving.UpdateSavingUseCase,
	setAmountUseCase *saving.SetSavingAmountUseCase,
	deleteUseCase *saving.DeleteSavingUseCase,
) *SavingController {
	return &SavingController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		setAmountUseCase: setAmountUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// Create handles POST /savings requests.
func (c *SavingController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingGoalFields),
		})
		return
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount format",
			Code:  string(domainerror.ErrCodeInvalidSavingGoalTarget),
		})
		return
	}

	input := saving.CreateSavingInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: targetAmount,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format. Use YYYY-MM-DD",
			})
			return
		}
		input.Deadline = deadline
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingResponse(output.Goal))
}

// List handles GET /savings requests.
func (c *SavingController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), saving.ListSavingsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingListResponse(output.Goals))
}

// Update handles PATCH /savings/:id requests.
func (c *SavingController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	savingID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingGoalFields),
		})
		return
	}

	input := saving.UpdateSavingInput{
		SavingID: savingID,
		UserID:   userID,
		Name:     req.Name,
	}

	if req.TargetAmount != nil {
		targetAmount, err := decimal.NewFromString(*req.TargetAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target amount format",
				Code:  string(domainerror.ErrCodeInvalidSavingGoalTarget),
			})
			return
		}
		input.TargetAmount = &targetAmount
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format. Use YYYY-MM-DD",
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingResponse(output.Goal))
}

// SetAmount handles PATCH /savings/:id/amount requests.
func (c *SavingController) SetAmount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	savingID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetSavingAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingGoalFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidSavingGoalAmount),
		})
		return
	}

	output, err := c.setAmountUseCase.Execute(ctx.Request.Context(), saving.SetSavingAmountInput{
		SavingID: savingID,
		UserID:   userID,
		Amount:   amount,
	})
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingResponse(output.Goal))
}

// Delete handles DELETE /savings/:id requests.
func (c *SavingController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	savingID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), saving.DeleteSavingInput{
		SavingID: savingID,
		UserID:   userID,
	})
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Saving goal deleted"})
}

// handleSavingError handles saving goal errors and returns appropriate HTTP responses.
func (c *SavingController) handleSavingError(ctx *gin.Context, err error) {
	var savingErr *domainerror.SavingError
	if errors.As(err, &savingErr) {
		ctx.JSON(c.getStatusCodeForSavingError(savingErr.Code), dto.ErrorResponse{
			Error: savingErr.Message,
			Code:  string(savingErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrSavingGoalNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Saving goal not found",
			Code:  string(domainerror.ErrCodeSavingGoalNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSavingError maps saving goal error codes to HTTP status codes.
func (c *SavingController) getStatusCodeForSavingError(code domainerror.SavingErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSavingGoal:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidSavingGoalTarget,
		domainerror.ErrCodeInvalidSavingGoalAmount,
		domainerror.ErrCodeMissingSavingGoalName,
		domainerror.ErrCodeMissingSavingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
