package xerrors

import (
	"errors"
	"strings"
)

// FallbackMessage is shown when a failure carries nothing human-readable.
const FallbackMessage = "An unexpected error occurred"

// ExtractMessage 将任意失败归一化为一条可展示的消息。
// Precedence: structured payload message > raw response body > the error's
// own message > FallbackMessage. Total over nil and arbitrary errors.
func ExtractMessage(err error) string {
	if err == nil {
		return FallbackMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if body := strings.TrimSpace(string(apiErr.Body)); body != "" {
			return body
		}
		return FallbackMessage
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return FallbackMessage
}
