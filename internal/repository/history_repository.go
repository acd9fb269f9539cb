package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryRepository only inserts and reads; application_history rows are
// never updated or deleted.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *models.ApplicationHistory) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *HistoryRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]models.ApplicationHistory, error) {
	var entries []models.ApplicationHistory
	query := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("timestamp DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, translate(err)
}
