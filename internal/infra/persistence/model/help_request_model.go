package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HelpRequestModel mirrors the 'help_requests' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type HelpRequestModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category          string         `gorm:"type:varchar(100);not null"`
	Urgency           string         `gorm:"type:varchar(20);not null;default:'medium'"`
	Latitude          *float64       `gorm:"type:decimal(10,8)"`
	Longitude         *float64       `gorm:"type:decimal(11,8)"`
	RequiredSkills    pq.StringArray `gorm:"type:text[]"`
	VolunteersNeeded  int            `gorm:"not null;default:1"`
	VolunteersMatched int            `gorm:"not null;default:0"`
	ScheduledAt       *time.Time
	Status            string `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (HelpRequestModel) TableName() string {
	return "help_requests"
}
