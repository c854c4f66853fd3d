package postgres

import (
	"context"

	"voluntree/internal/domain/entity"
	domainerrors "voluntree/internal/domain/errors"
	"voluntree/internal/domain/repository"
	"voluntree/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// UpsertMatches persists match proposals. Rows conflicting on
// (request_id, volunteer_id) are updated in place, so re-running a matching
// operation refreshes score, status and updated_at instead of duplicating.
func (repo *matchRepository) UpsertMatches(ctx context.Context, matches []*entity.Match) error {
	if len(matches) == 0 {
		return nil
	}

	matchModels := make([]*model.MatchModel, 0, len(matches))
	for _, match := range matches {
		matchModels = append(matchModels, fromMatchDomain(match))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "request_id"}, {Name: "volunteer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "status", "updated_at"}),
		}).
		Create(&matchModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMatchCreationFailed.WrapMessage("unknown request or volunteer reference")
		}

		return errors.Wrap(err, "failed to upsert matches")
	}

	// Carry DB-generated IDs and timestamps back to the entities.
	for i, matchM := range matchModels {
		matches[i].ID = matchM.ID
		matches[i].CreatedAt = matchM.CreatedAt
		matches[i].UpdatedAt = matchM.UpdatedAt
	}

	return nil
}

// FindActiveMatchesByRequest retrieves the pending and accepted matches of a
// request. These form the exclusion set for subsequent matching runs.
func (repo *matchRepository) FindActiveMatchesByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND status IN ?", requestID,
			[]string{string(entity.MatchStatusPending), string(entity.MatchStatusAccepted)}).
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active matches by request")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// toMatchDomain converts a persistence model to a domain entity.
func toMatchDomain(matchM *model.MatchModel) *entity.Match {
	return &entity.Match{
		ID:          matchM.ID,
		RequestID:   matchM.RequestID,
		VolunteerID: matchM.VolunteerID,
		Score:       matchM.Score,
		Status:      entity.MatchStatus(matchM.Status),
		CreatedAt:   matchM.CreatedAt,
		UpdatedAt:   matchM.UpdatedAt,
	}
}

// fromMatchDomain converts a domain entity to a persistence model.
func fromMatchDomain(match *entity.Match) *model.MatchModel {
	return &model.MatchModel{
		ID:          match.ID,
		RequestID:   match.RequestID,
		VolunteerID: match.VolunteerID,
		Score:       match.Score,
		Status:      string(match.Status),
		CreatedAt:   match.CreatedAt,
		UpdatedAt:   match.UpdatedAt,
	}
}
