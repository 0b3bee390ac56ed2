package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, timelog.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Dates are YYYY-MM-DD, labels non-blank, hours non-negative"}
	case errors.Is(err, timelog.ErrConfigNotFound):
		return &APIError{Code: "CONFIG_NOT_FOUND", Message: "no categories stored yet", RecoveryHint: "Call set_categories first"}
	default:
		return nil
	}
}

// toolError returns the mapped API error for err, or a generic one.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return &APIError{Code: "INTERNAL", Message: err.Error()}
}
