// Package service defines ports to infrastructure collaborators owned outside
// the matching engine.
package service

import "context"

// NotificationService defines the interface for sending push notifications.
// Dispatch is best effort from the engine's point of view: a failed send never
// fails the matching write that triggered it.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends a push notification to multiple device tokens
	// (max 500 per call) and reports per-token outcomes.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
