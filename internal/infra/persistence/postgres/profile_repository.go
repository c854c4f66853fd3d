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

// profileRepository implements the repository.ProfileRepository interface over
// the account service's users table.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindDisplayProfiles retrieves display names and avatars for the given users.
// Missing users are simply absent from the result, not an error.
func (repo *profileRepository) FindDisplayProfiles(ctx context.Context, userIDs []uuid.UUID) ([]*entity.VolunteerDisplay, error) {
	if len(userIDs) == 0 {
		return []*entity.VolunteerDisplay{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find display profiles")
	}

	displays := make([]*entity.VolunteerDisplay, 0, len(userModels))
	for _, userM := range userModels {
		displays = append(displays, &entity.VolunteerDisplay{
			UserID:      userM.ID,
			DisplayName: userM.DisplayName,
			AvatarURL:   userM.AvatarURL,
		})
	}

	return displays, nil
}
