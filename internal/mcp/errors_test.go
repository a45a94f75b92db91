package mcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
	"github.com/crtic/ptc-manager/internal/mcp"
)

func TestMapError_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{project.ErrNotFound, "PROJECT_NOT_FOUND"},
		{project.ErrAlreadyClosed, "ALREADY_CLOSED"},
		{project.ErrMissingReason, "MISSING_REASON"},
		{project.ErrInvalidInput, "INVALID_INPUT"},
		{quotation.ErrInvalidInput, "INVALID_INPUT"},
	}
	for _, tc := range cases {
		mapped := mcp.MapError(tc.err)
		var apiErr *mcp.APIError
		require.ErrorAs(t, mapped, &apiErr)
		require.Equal(t, tc.code, apiErr.Code)
	}
}

func TestMapError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("closing project: %w", project.ErrAlreadyClosed)
	mapped := mcp.MapError(wrapped)
	var apiErr *mcp.APIError
	require.ErrorAs(t, mapped, &apiErr)
	require.Equal(t, "ALREADY_CLOSED", apiErr.Code)
}

func TestMapError_Passthrough(t *testing.T) {
	require.NoError(t, mcp.MapError(nil))

	unknown := errors.New("disk full")
	require.Equal(t, unknown, mcp.MapError(unknown))
}
