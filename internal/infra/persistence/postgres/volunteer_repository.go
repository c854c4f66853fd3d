package postgres

import (
	"context"

	"voluntree/internal/domain/entity"
	"voluntree/internal/domain/repository"
	"voluntree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// volunteerRepository implements the repository.VolunteerRepository interface.
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository is the constructor for volunteerRepository.
func NewVolunteerRepository(db *gorm.DB) repository.VolunteerRepository {
	return &volunteerRepository{
		db: db,
	}
}

// FindAvailableVolunteers retrieves every volunteer open to proposals,
// excluding the given user. The requester of a request is passed here so a
// request never matches its own author.
func (repo *volunteerRepository) FindAvailableVolunteers(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.VolunteerProfile, error) {
	var volunteerModels []*model.VolunteerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("is_available = ? AND user_id <> ?", true, excludeUserID).
		Find(&volunteerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available volunteers")
	}

	volunteers := make([]*entity.VolunteerProfile, 0, len(volunteerModels))
	for _, volunteerM := range volunteerModels {
		volunteers = append(volunteers, toVolunteerDomain(volunteerM))
	}

	return volunteers, nil
}

// toVolunteerDomain converts a persistence model to a domain entity.
func toVolunteerDomain(volunteerM *model.VolunteerProfileModel) *entity.VolunteerProfile {
	return &entity.VolunteerProfile{
		UserID:          volunteerM.UserID,
		Skills:          []string(volunteerM.Skills),
		AvailableDays:   []string(volunteerM.AvailableDays),
		TimeSlots:       []string(volunteerM.TimeSlots),
		Latitude:        volunteerM.Latitude,
		Longitude:       volunteerM.Longitude,
		ServiceRadiusKm: volunteerM.ServiceRadiusKm,
		ExperienceTier:  entity.ExperienceTier(volunteerM.ExperienceTier),
		Rating:          volunteerM.Rating,
		IsAvailable:     volunteerM.IsAvailable,
		TasksCompleted:  volunteerM.TasksCompleted,
		CreatedAt:       volunteerM.CreatedAt,
		UpdatedAt:       volunteerM.UpdatedAt,
	}
}
