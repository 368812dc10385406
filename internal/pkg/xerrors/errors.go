package xerrors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// APIError 远端服务拒绝请求时的结构化错误。
// Status is the HTTP status, Code/Message come from the JSON error payload
// {"error": ..., "message": ...}. When the body is not that shape, Code and
// Message stay empty and Body keeps the raw bytes.
type APIError struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
	Body    []byte    `json:"-"`
}

// Error 实现标准 error 接口
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Status, e.Code, e.Message)
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("[%d] %s", e.Status, string(e.Body))
	}
	return fmt.Sprintf("[%d] request rejected", e.Status)
}

// Retryable reports whether resubmitting the same request can succeed
// without the user changing anything. Server-side trouble is retryable,
// a 4xx rejection is not.
func (e *APIError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError ||
		e.Code == CodeDatabaseUnavailable
}

// LogValue 实现 slog.LogValuer 接口
func (e *APIError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", e.Status),
		slog.Bool("retryable", e.Retryable()),
	}
	if e.Code != "" {
		attrs = append(attrs, slog.String("code", string(e.Code)))
	}
	if e.Message != "" {
		attrs = append(attrs, slog.String("message", e.Message))
	}
	return slog.GroupValue(attrs...)
}

// NewAPIError builds an APIError for a rejected request.
func NewAPIError(status int, code ErrorCode, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}
