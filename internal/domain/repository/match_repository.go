package repository

import (
	"context"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository defines the interface for match-record persistence.
type MatchRepository interface {
	// UpsertMatches persists match proposals with insert-or-update semantics on
	// the (request_id, volunteer_id) composite key. Re-running a matching
	// operation reconciles existing rows instead of duplicating them; the
	// uniqueness guarantee lives in the storage engine's conflict resolution,
	// not in application-level locking.
	UpsertMatches(ctx context.Context, matches []*entity.Match) error

	// FindActiveMatchesByRequest retrieves the pending and accepted matches for
	// a request. Volunteers appearing here are excluded from further candidate
	// selection for that request.
	FindActiveMatchesByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error)
}
