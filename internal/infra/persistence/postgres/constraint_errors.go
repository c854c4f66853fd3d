package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper for PostgreSQL error checking
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
