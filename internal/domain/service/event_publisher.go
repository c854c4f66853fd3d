package service

import (
	"context"
)

// Match event sources.
const (
	// MatchSourceAuto marks matches created by scored on-demand matching.
	MatchSourceAuto = "auto"
	// MatchSourceManual marks matches curated by a human from the nearby search.
	MatchSourceManual = "manual"
	// MatchSourceBatch marks matches created by the scheduled backlog sweep.
	MatchSourceBatch = "batch"
)

// MatchEvent represents a batch of newly persisted match proposals for one
// help request, published for downstream consumers (feeds, admin panels).
type MatchEvent struct {
	RequestID     string   `json:"request_id,omitempty"` // For distributed tracing.
	HelpRequestID string   `json:"help_request_id"`
	RequesterID   string   `json:"requester_id"`
	VolunteerIDs  []string `json:"volunteer_ids"`
	Source        string   `json:"source"` // auto | manual | batch.
}

// EventPublisher defines the interface for publishing match events to a
// message queue.
type EventPublisher interface {
	// PublishMatchEvent publishes a match event for async processing.
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
