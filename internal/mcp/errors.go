package mcp

import (
	"errors"
	"fmt"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
	"github.com/crtic/ptc-manager/internal/extract"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the project ID against list_projects"}
	case errors.Is(err, project.ErrAlreadyClosed):
		return &APIError{Code: "ALREADY_CLOSED", Message: err.Error(), RecoveryHint: "Closed projects cannot be closed again"}
	case errors.Is(err, project.ErrMissingReason):
		return &APIError{Code: "MISSING_REASON", Message: err.Error(), RecoveryHint: "Provide a non-empty closure reason"}
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, quotation.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, extract.ErrEmptyInput):
		return &APIError{Code: "EMPTY_INPUT", Message: err.Error(), RecoveryHint: "Provide a non-empty description of the opportunity"}
	default:
		return err
	}
}
