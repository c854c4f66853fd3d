package repository

import (
	"context"

	"github.com/google/uuid"
)

// DeviceRepository defines the read-only interface over registered devices,
// used to fan push notifications out to newly matched volunteers.
type DeviceRepository interface {
	// FindActiveTokensByUserIDs retrieves the FCM tokens of every active device
	// belonging to the given users.
	FindActiveTokensByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]string, error)
}
