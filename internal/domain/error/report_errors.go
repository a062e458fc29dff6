// Package error defines domain-specific errors for the Signance application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReferenceDate is returned when the reference date is malformed.
	ErrInvalidReferenceDate = errors.New("invalid reference date, expected YYYY-MM-DD")

	// ErrInvalidMonthCount is returned when the requested month count is below one.
	ErrInvalidMonthCount = errors.New("month count must be at least 1")

	// ErrInvalidReportType is returned when the requested kind is neither income nor expense.
	ErrInvalidReportType = errors.New("report type must be income or expense")
)

// ReportErrorCode defines error codes for reporting errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceDate ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonthCount    ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportType    ReportErrorCode = "RPT-010003"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a reporting error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
