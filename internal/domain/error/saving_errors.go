// Package error defines domain-specific errors for the Signance application.
package error

import "errors"

// Saving goal domain errors.
var (
	// ErrSavingGoalNotFound is returned when a saving goal is not found in the system.
	ErrSavingGoalNotFound = errors.New("saving goal not found")

	// ErrNotAuthorizedToModifySavingGoal is returned when user is not authorized to modify a saving goal.
	ErrNotAuthorizedToModifySavingGoal = errors.New("not authorized to modify saving goal")

	// ErrInvalidSavingGoalTarget is returned when the target amount is not positive.
	ErrInvalidSavingGoalTarget = errors.New("saving goal target must be positive")

	// ErrInvalidSavingGoalAmount is returned when the current amount is negative.
	ErrInvalidSavingGoalAmount = errors.New("saving goal amount must not be negative")

	// ErrMissingSavingGoalName is returned when the goal name is empty.
	ErrMissingSavingGoalName = errors.New("saving goal name is required")
)

// SavingErrorCode defines error codes for saving goal errors.
// Format: SVG-XXYYYY where XX is category and YYYY is specific error.
type SavingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSavingGoalTarget SavingErrorCode = "SVG-010001"
	ErrCodeInvalidSavingGoalAmount SavingErrorCode = "SVG-010002"
	ErrCodeMissingSavingGoalName   SavingErrorCode = "SVG-010003"
	ErrCodeSavingGoalNotFound      SavingErrorCode = "SVG-010004"
	ErrCodeNotAuthorizedSavingGoal SavingErrorCode = "SVG-010005"
	ErrCodeMissingSavingGoalFields SavingErrorCode = "SVG-010006"
)

// SavingError represents a saving goal error with code and message.
type SavingError struct {
	Code    SavingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingError) Unwrap() error {
	return e.Err
}

// NewSavingError creates a new SavingError with the given code and message.
func NewSavingError(code SavingErrorCode, message string, err error) *SavingError {
	return &SavingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
