package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationHistory records one candidate status transition. Rows are
// inserted once and never updated.
type ApplicationHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index:idx_history_candidate_ts,priority:1" json:"candidate_id"`
	JobCode     string    `gorm:"column:job_code;size:20;not null" json:"job_code"`
	OldStatus   string    `gorm:"size:20" json:"old_status"`
	NewStatus   string    `gorm:"size:20;not null" json:"new_status"`
	UpdatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	Timestamp   time.Time `gorm:"not null;index:idx_history_candidate_ts,priority:2,sort:desc" json:"timestamp"`
	Comment     *string   `gorm:"type:text" json:"comment"`
}

func (ApplicationHistory) TableName() string {
	return "application_history"
}
