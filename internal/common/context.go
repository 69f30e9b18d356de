package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyNoticeID  contextKey = "notice_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithNoticeID adds a notice ID to the context
func WithNoticeID(ctx context.Context, noticeID string) context.Context {
	return context.WithValue(ctx, ContextKeyNoticeID, noticeID)
}

// NoticeIDFromContext extracts the notice ID from context
func NoticeIDFromContext(ctx context.Context) string {
	if noticeID, ok := ctx.Value(ContextKeyNoticeID).(string); ok {
		return noticeID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
