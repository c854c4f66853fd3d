package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table, owned by the account service. The
// matching engine only reads the display columns from it.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName string    `gorm:"type:varchar(100)"`
	AvatarURL   string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
