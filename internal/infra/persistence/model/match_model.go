package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel mirrors the 'matches' table. The (request_id, volunteer_id) pair
// is unique so repeated matching runs upsert instead of inserting duplicates.
type MatchModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_request_volunteer"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_request_volunteer;index"`
	Score       int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
