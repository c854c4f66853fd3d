package repository

import (
	"context"

	"voluntree/internal/domain/entity"
	"voluntree/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a help request is not found.
var ErrRequestNotFound = errors.New("help request not found")

// HelpRequestRepository defines the interface for help-request persistence.
// The matching engine reads requests and writes only the status field.
type HelpRequestRepository interface {
	// FindRequestByID retrieves a help request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error)

	// FindRequestsNeedingVolunteers retrieves every request in status open or
	// matching whose matched headcount is below the needed headcount, oldest
	// first. This drives the batch matching sweep.
	FindRequestsNeedingVolunteers(ctx context.Context) ([]*entity.HelpRequest, error)

	// UpdateRequestStatus updates the status of a help request.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
}
