package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
)

type CreateJobRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description"`
	Location      string `json:"location" validate:"max=255"`
	SalaryPackage string `json:"salary_package" validate:"max=100"`
	// CTC is accepted as an alias of SalaryPackage (CSV and bulk clients).
	CTC           string `json:"ctc" validate:"max=100"`
	SourceCompany string `json:"source_company" validate:"max=255"`
}

// JobPatch lists the job fields an admin may change. Code, uploader,
// creation time and HR assignment are not patchable.
type JobPatch struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location" validate:"omitempty,max=255"`
	SalaryPackage *string    `json:"salary_package" validate:"omitempty,max=100"`
	SourceCompany *string    `json:"source_company" validate:"omitempty,max=255"`
	Status        *string    `json:"status" validate:"omitempty,oneof=open allocated closed submit"`
	OpeningDate   *time.Time `json:"opening_date"`
}

// JobFilter is the query of GET /admin/jobs and GET /hr/jobs. Dates are
// YYYY-MM-DD and both bounds are inclusive.
type JobFilter struct {
	Status          string `query:"status" validate:"omitempty,oneof=open allocated closed submit"`
	OpeningDateFrom string `query:"opening_date_from"`
	OpeningDateTo   string `query:"opening_date_to"`
	AssignedHR      string `query:"assigned_hr" validate:"omitempty,uuid"`
}

type StatusRequest struct {
	Status string  `json:"status" query:"status"`
	Notes  *string `json:"notes" query:"notes"`
}

type JobResponse struct {
	models.Job
	AssignedHRName string `json:"assigned_hr_name,omitempty"`
}

type CreateJobResponse struct {
	Message string      `json:"message"`
	JobCode string      `json:"job_code"`
	Job     *models.Job `json:"job"`
}

type BulkCreateResponse struct {
	Message   string `json:"message"`
	JobsAdded int    `json:"jobs_added"`
}
