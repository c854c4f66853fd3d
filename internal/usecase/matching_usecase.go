package usecase

import (
	"context"
	"time"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyVolunteer is a scored candidate enriched with display information
// for presentation to the requester.
type NearbyVolunteer struct {
	*entity.MatchResult

	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// BatchRequestFailure records a single request that could not be processed
// during a batch matching run.
type BatchRequestFailure struct {
	RequestID uuid.UUID `json:"request_id"`
	Reason    string    `json:"reason"`
}

// BatchMatchingReport summarizes a full batch matching run. A run only
// fails as a whole when the candidate requests cannot be listed; individual
// request failures are collected here instead.
type BatchMatchingReport struct {
	RequestsScanned int                   `json:"requests_scanned"`
	RequestsMatched int                   `json:"requests_matched"`
	MatchesCreated  int                   `json:"matches_created"`
	Failures        []BatchRequestFailure `json:"failures,omitempty"`
	Elapsed         time.Duration         `json:"-"`
}

// MatchingUsecase defines the interface for volunteer matching use cases
type MatchingUsecase interface {
	// FindMatches scores all available volunteers against a help request and
	// returns the ranked candidates without persisting anything
	FindMatches(ctx context.Context, requestID uuid.UUID, limit int) ([]*entity.MatchResult, error)

	// FindNearbyVolunteers returns volunteers within radiusKm of the request,
	// enriched with display profiles when available. A nil radiusKm falls back
	// to the configured default; an explicit zero only keeps volunteers at the
	// request location itself
	FindNearbyVolunteers(ctx context.Context, requestID uuid.UUID, radiusKm *float64, limit int) ([]*NearbyVolunteer, error)

	// CreateMatches scores candidates and persists the top ones as pending
	// match proposals, moving the request into matching status
	CreateMatches(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error)

	// CreateSelectedMatches persists match proposals for an explicit list of
	// volunteers, bypassing scoring entirely
	CreateSelectedMatches(ctx context.Context, requestID uuid.UUID, volunteerIDs []uuid.UUID) ([]*entity.Match, error)

	// RunBatchMatching runs CreateMatches over every request that still needs
	// volunteers and aggregates the outcome into a report
	RunBatchMatching(ctx context.Context) (*BatchMatchingReport, error)
}
