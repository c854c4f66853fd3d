package repository

import (
	"context"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileRepository defines the read-only interface over user display data,
// used to enrich nearby-search responses. Enrichment is best effort: a failed
// fetch degrades to omitting display fields, never to aborting the match
// computation.
type ProfileRepository interface {
	// FindDisplayProfiles retrieves display fields for the given user IDs.
	// Unknown IDs are silently absent from the result.
	FindDisplayProfiles(ctx context.Context, userIDs []uuid.UUID) ([]*entity.VolunteerDisplay, error)
}
