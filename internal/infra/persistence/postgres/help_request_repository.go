package postgres

import (
	"context"
	"time"

	"voluntree/internal/domain/entity"
	"voluntree/internal/domain/repository"
	"voluntree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// helpRequestRepository implements the repository.HelpRequestRepository interface.
type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository is the constructor for helpRequestRepository.
func NewHelpRequestRepository(db *gorm.DB) repository.HelpRequestRepository {
	return &helpRequestRepository{
		db: db,
	}
}

// FindRequestByID retrieves a help request by its unique ID.
func (repo *helpRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error) {
	var requestM model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find help request by ID")
	}

	return toHelpRequestDomain(&requestM), nil
}

// FindRequestsNeedingVolunteers retrieves open or matching requests whose
// matched headcount is still below the target, oldest first.
func (repo *helpRequestRepository) FindRequestsNeedingVolunteers(ctx context.Context) ([]*entity.HelpRequest, error) {
	var requestModels []*model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status IN ? AND volunteers_matched < volunteers_needed",
			[]string{string(entity.RequestStatusOpen), string(entity.RequestStatusMatching)}).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests needing volunteers")
	}

	requests := make([]*entity.HelpRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toHelpRequestDomain(requestM))
	}

	return requests, nil
}

// UpdateRequestStatus updates the lifecycle status of a help request.
func (repo *helpRequestRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HelpRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// toHelpRequestDomain converts a persistence model to a domain entity.
func toHelpRequestDomain(requestM *model.HelpRequestModel) *entity.HelpRequest {
	return &entity.HelpRequest{
		ID:                requestM.ID,
		RequesterID:       requestM.RequesterID,
		Category:          requestM.Category,
		Urgency:           entity.Urgency(requestM.Urgency),
		Latitude:          requestM.Latitude,
		Longitude:         requestM.Longitude,
		RequiredSkills:    []string(requestM.RequiredSkills),
		VolunteersNeeded:  requestM.VolunteersNeeded,
		VolunteersMatched: requestM.VolunteersMatched,
		ScheduledAt:       requestM.ScheduledAt,
		Status:            entity.RequestStatus(requestM.Status),
		CreatedAt:         requestM.CreatedAt,
		UpdatedAt:         requestM.UpdatedAt,
	}
}
