package xerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractMessagePrecedence(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"nil yields fallback",
			nil,
			FallbackMessage,
		},
		{
			"structured payload message wins",
			&APIError{Status: 409, Code: CodeDuplicateUsername, Message: "Username 'alice' already exists"},
			"Username 'alice' already exists",
		},
		{
			"plain-text body when no payload message",
			&APIError{Status: 503, Body: []byte("upstream unavailable")},
			"upstream unavailable",
		},
		{
			"empty rejection yields fallback",
			&APIError{Status: 500},
			FallbackMessage,
		},
		{
			"whitespace-only body yields fallback",
			&APIError{Status: 502, Body: []byte("  \n")},
			FallbackMessage,
		},
		{
			"generic error message",
			errors.New("x"),
			"x",
		},
		{
			"wrapped transport failure",
			fmt.Errorf("do request: %w", errors.New("connection refused")),
			"do request: connection refused",
		},
		{
			"empty error message yields fallback",
			errors.New(""),
			FallbackMessage,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExtractMessage(tc.err))
		})
	}
}

func TestExtractMessageUnwrapsAPIError(t *testing.T) {
	inner := NewAPIError(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password")
	wrapped := fmt.Errorf("login: %w", inner)
	require.Equal(t, "Invalid username or password", ExtractMessage(wrapped))
}

func TestAPIErrorRetryable(t *testing.T) {
	require.True(t, (&APIError{Status: 500}).Retryable())
	require.True(t, (&APIError{Status: 503, Code: CodeDatabaseUnavailable}).Retryable())
	require.False(t, (&APIError{Status: 409, Code: CodeDuplicateUsername}).Retryable())
	require.False(t, (&APIError{Status: 401, Code: CodeInvalidCredentials}).Retryable())
}

func TestErrorCodeKnown(t *testing.T) {
	require.True(t, CodeInvalidCredentials.Known())
	require.False(t, ErrorCode("SOMETHING_ELSE").Known())
}
