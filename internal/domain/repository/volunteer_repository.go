// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
)

// VolunteerRepository defines the read interface over the volunteer roster.
// Profiles are owned by the volunteers; the matching engine never writes them.
type VolunteerRepository interface {
	// FindAvailableVolunteers retrieves every profile with the availability flag
	// set, excluding the given user (a requester never matches their own request).
	FindAvailableVolunteers(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.VolunteerProfile, error)
}
