package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusOpen      = "open"
	JobStatusAllocated = "allocated"
	JobStatusClosed    = "closed"
	JobStatusSubmit    = "submit"
)

// JobStatuses lists every status a job may carry. Transitions between them
// are not guarded.
var JobStatuses = []string{JobStatusOpen, JobStatusAllocated, JobStatusClosed, JobStatusSubmit}

// Job is a posting. Code is the human-facing identifier ("jb" + MMDDHHMM +
// two digits); it is not unique-indexed because generation does not check
// for collisions.
type Job struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code          string     `gorm:"column:job_code;size:20;not null;index" json:"job_code"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Location      string     `gorm:"size:255" json:"location"`
	SalaryPackage string     `gorm:"size:100" json:"salary_package"`
	SourceCompany string     `gorm:"size:255" json:"source_company"`
	UploadedBy    uuid.UUID  `gorm:"type:uuid;not null;index" json:"uploaded_by"`
	AssignedHR    *uuid.UUID `gorm:"column:assigned_hr;type:uuid;index" json:"assigned_hr"`
	Status        string     `gorm:"size:20;not null;default:'open';index" json:"status"`
	OpeningDate   time.Time  `gorm:"index" json:"opening_date"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AssignedTo reports whether the job is allocated to the given user.
func (j *Job) AssignedTo(userID uuid.UUID) bool {
	return j.AssignedHR != nil && *j.AssignedHR == userID
}

func IsJobStatus(s string) bool {
	for _, v := range JobStatuses {
		if v == s {
			return true
		}
	}
	return false
}
