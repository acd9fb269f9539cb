// Package repository implements the service store contracts on GORM.
package repository

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// translate maps GORM errors onto the shared taxonomy. Anything that is not
// a missing row or a unique violation is a database error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("Record already exists")
	default:
		return apperr.Database(err)
	}
}

// assignedTo limits a jobs query to one HR user.
func assignedTo(hrID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("assigned_hr = ?", hrID)
	}
}

// statusCount is one row of a GROUP BY status query.
type statusCount struct {
	Status string
	Count  int64
}

func countsByStatus(rows []statusCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out
}
