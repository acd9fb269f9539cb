package dto

import (
	"encoding/json"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
)

type CreateCandidateRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	JobCode string `json:"job_code" validate:"required,max=20"`
	Status  string `json:"status" validate:"omitempty,oneof=applied in_progress interviewed selected rejected"`
	models.CandidateProfile
}

// CandidatePatch is a partial candidate document. Keys that are absent or
// null leave the stored value unchanged; keys outside the mutable set are
// ignored.
type CandidatePatch map[string]json.RawMessage

// CandidateResponse decorates a candidate with the title of its job.
type CandidateResponse struct {
	models.Candidate
	AppliedFor     string `json:"applied_for,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	TitlePosition  string `json:"title_position,omitempty"`
	RoleAppliedFor string `json:"role_applied_for,omitempty"`
}

type CreateCandidateResponse struct {
	Message   string            `json:"message"`
	Candidate *models.Candidate `json:"candidate"`
}
