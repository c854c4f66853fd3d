package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// VolunteerProfileModel mirrors the 'volunteer_profiles' table. UserID references users.id (UUID).
// Tag columns use PostgreSQL text[] via pq.StringArray.
type VolunteerProfileModel struct {
	UserID          uuid.UUID      `gorm:"primaryKey"`
	Skills          pq.StringArray `gorm:"type:text[]"`
	AvailableDays   pq.StringArray `gorm:"type:text[]"`
	TimeSlots       pq.StringArray `gorm:"type:text[]"`
	Latitude        *float64       `gorm:"type:decimal(10,8)"`
	Longitude       *float64       `gorm:"type:decimal(11,8)"`
	ServiceRadiusKm float64        `gorm:"type:decimal(6,2);not null;default:10"`
	ExperienceTier  string         `gorm:"type:varchar(20);not null;default:'beginner'"`
	Rating          float64        `gorm:"type:decimal(3,2);not null;default:0"`
	IsAvailable     bool           `gorm:"not null;default:true;index"`
	TasksCompleted  int            `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VolunteerProfileModel) TableName() string {
	return "volunteer_profiles"
}
