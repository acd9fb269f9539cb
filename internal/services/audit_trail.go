package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/google/uuid"
)

// AuditTrail is the append-only record of candidate status changes.
type AuditTrail struct {
	history HistoryRepository
	now     func() time.Time
}

func NewAuditTrail(history HistoryRepository) *AuditTrail {
	return &AuditTrail{history: history, now: time.Now}
}

func (a *AuditTrail) Append(ctx context.Context, candidateID uuid.UUID, jobCode, oldStatus, newStatus string, actor uuid.UUID, comment *string) error {
	return a.history.Append(ctx, &models.ApplicationHistory{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobCode:     jobCode,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		UpdatedBy:   actor,
		Timestamp:   a.now().UTC(),
		Comment:     comment,
	})
}

// ListByCandidate returns up to 100 entries, newest first.
func (a *AuditTrail) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.ApplicationHistory, error) {
	entries, err := a.history.ListByCandidate(ctx, candidateID, listLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ApplicationHistory{}
	}
	return entries, nil
}
