package postgres

import (
	"context"

	"voluntree/internal/domain/repository"
	"voluntree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface over
// the account service's user_devices table.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindActiveTokensByUserIDs retrieves the FCM tokens of every active,
// non-deleted device belonging to the given users.
func (repo *deviceRepository) FindActiveTokensByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]string, error) {
	if len(userIDs) == 0 {
		return []string{}, nil
	}

	var tokens []string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id IN ? AND is_active = ? AND deleted_at IS NULL", userIDs, true).
		Pluck("fcm_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens")
	}

	return tokens, nil
}
