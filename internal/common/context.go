package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyProcessingID contextKey = "processing_id"
	ContextKeyUserID       contextKey = "user_id"
)

// WithProcessingID adds a processing (correlation) ID to the context
func WithProcessingID(ctx context.Context, processingID string) context.Context {
	return context.WithValue(ctx, ContextKeyProcessingID, processingID)
}

// ProcessingIDFromContext extracts the processing ID from context
func ProcessingIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyProcessingID).(string); ok {
		return id
	}
	return ""
}

// WithUserID adds a user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext extracts the user ID from context
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
