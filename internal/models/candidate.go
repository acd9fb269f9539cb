package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CandidateStatusApplied     = "applied"
	CandidateStatusInProgress  = "in_progress"
	CandidateStatusInterviewed = "interviewed"
	CandidateStatusSelected    = "selected"
	CandidateStatusRejected    = "rejected"
)

var CandidateStatuses = []string{
	CandidateStatusApplied,
	CandidateStatusInProgress,
	CandidateStatusInterviewed,
	CandidateStatusSelected,
	CandidateStatusRejected,
}

func IsCandidateStatus(s string) bool {
	for _, v := range CandidateStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type ExperienceEntry struct {
	Organization          string   `json:"organization"`
	EndClient             string   `json:"end_client"`
	Project               string   `json:"project"`
	StartMonthYear        string   `json:"start_month_year"`
	EndMonthYear          string   `json:"end_month_year"`
	TechnologyTools       string   `json:"technology_tools"`
	RoleDesignation       string   `json:"role_designation,omitempty"`
	Responsibilities      []string `json:"responsibilities,omitempty"`
	AdditionalInformation string   `json:"additional_information,omitempty"`
}

type SkillAssessment struct {
	SkillName                string `json:"skill_name"`
	YearsOfExperience        string `json:"years_of_experience"`
	LastUsedYear             string `json:"last_used_year"`
	VendorSMEAssessmentScore string `json:"vendor_sme_assessment_score"`
}

// CandidateProfile holds every optional attribute of an application. It is
// embedded both in the stored Candidate and in the create request.
type CandidateProfile struct {
	PanNumber          string `gorm:"size:20" json:"pan_number,omitempty"`
	PassportNumber     string `gorm:"size:20" json:"passport_number,omitempty"`
	CurrentLocation    string `gorm:"size:255" json:"current_location,omitempty"`
	Hometown           string `gorm:"size:255" json:"hometown,omitempty"`
	CurrentRole        string `gorm:"size:255" json:"current_role,omitempty"`
	NoticePeriod       string `gorm:"size:100" json:"notice_period,omitempty"`
	TotalExperience    string `gorm:"size:50" json:"total_experience,omitempty"`
	RelevantExperience string `gorm:"size:50" json:"relevant_experience,omitempty"`
	LinkedIn           string `gorm:"column:linkedin;size:255" json:"linkedin,omitempty"`
	GitHub             string `gorm:"column:github;size:255" json:"github,omitempty"`

	// Class X
	EducationXInstitute  string `gorm:"column:education_x_institute" json:"education_x_institute,omitempty"`
	EducationXStartDate  string `gorm:"column:education_x_start_date" json:"education_x_start_date,omitempty"`
	EducationXEndDate    string `gorm:"column:education_x_end_date" json:"education_x_end_date,omitempty"`
	EducationXPercentage string `gorm:"column:education_x_percentage" json:"education_x_percentage,omitempty"`

	// Class XII
	EducationXIIInstitute  string `gorm:"column:education_xii_institute" json:"education_xii_institute,omitempty"`
	EducationXIIStartDate  string `gorm:"column:education_xii_start_date" json:"education_xii_start_date,omitempty"`
	EducationXIIEndDate    string `gorm:"column:education_xii_end_date" json:"education_xii_end_date,omitempty"`
	EducationXIIPercentage string `gorm:"column:education_xii_percentage" json:"education_xii_percentage,omitempty"`

	// Degree
	EducationDegreeName       string `gorm:"column:education_degree_name" json:"education_degree_name,omitempty"`
	EducationDegreeInstitute  string `gorm:"column:education_degree_institute" json:"education_degree_institute,omitempty"`
	EducationDegreeStartDate  string `gorm:"column:education_degree_start_date" json:"education_degree_start_date,omitempty"`
	EducationDegreeEndDate    string `gorm:"column:education_degree_end_date" json:"education_degree_end_date,omitempty"`
	EducationDegreePercentage string `gorm:"column:education_degree_percentage" json:"education_degree_percentage,omitempty"`

	// Older clients send education as free text.
	EducationX          string `gorm:"column:education_x" json:"education_x,omitempty"`
	EducationXII        string `gorm:"column:education_xii" json:"education_xii,omitempty"`
	EducationDegree     string `gorm:"column:education_degree" json:"education_degree,omitempty"`
	EducationPercentage string `gorm:"column:education_percentage" json:"education_percentage,omitempty"`
	EducationDuration   string `gorm:"column:education_duration" json:"education_duration,omitempty"`

	ExperienceEntries datatypes.JSONSlice[ExperienceEntry] `gorm:"type:jsonb" json:"experience_entries"`
	SkillAssessments  datatypes.JSONSlice[SkillAssessment] `gorm:"type:jsonb" json:"skill_assessments"`

	// SME declaration
	SMEName                     string `gorm:"column:sme_name" json:"sme_name,omitempty"`
	SMEEmail                    string `gorm:"column:sme_email" json:"sme_email,omitempty"`
	SMEMobile                   string `gorm:"column:sme_mobile" json:"sme_mobile,omitempty"`
	PersonallySpokenToCandidate bool   `json:"personally_spoken_to_candidate"`
	DoNotKnowCandidate          bool   `json:"do_not_know_candidate"`
	GeneralAttitudeAssessment   string `json:"general_attitude_assessment,omitempty"`
	OralCommunicationAssessment string `json:"oral_communication_assessment,omitempty"`

	// Verification
	EducationAuthenticatedUGCCheck bool `gorm:"column:education_authenticated_ugc_check" json:"education_authenticated_ugc_check"`
	OfferLetterVerified            bool `json:"offer_letter_verified"`
	SalarySlipVerified             bool `json:"salary_slip_verified"`
	ROCCheckDone                   bool `gorm:"column:roc_check_done" json:"roc_check_done"`
	EvaluatedResumeWithJD          bool `gorm:"column:evaluated_resume_with_jd" json:"evaluated_resume_with_jd"`

	Certifications string `gorm:"type:text" json:"certifications,omitempty"`
	Publications   string `gorm:"type:text" json:"publications,omitempty"`
	References     string `gorm:"type:text" json:"references,omitempty"`
	Skills         string `gorm:"type:text" json:"skills,omitempty"`
	Projects       string `gorm:"type:text" json:"projects,omitempty"`
	AppliedDate    string `gorm:"size:40" json:"applied_date,omitempty"`
}

// Candidate is an application for exactly one job, referenced by job code.
type Candidate struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Email   string    `gorm:"size:255;not null;index" json:"email"`
	Phone   string    `gorm:"size:50;not null" json:"phone"`
	JobCode string    `gorm:"column:job_code;size:20;not null;index" json:"job_code"`
	CandidateProfile
	Status        string     `gorm:"size:20;not null;default:'applied';index" json:"status"`
	Notes         *string    `gorm:"type:text" json:"notes"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;index" json:"created_by"`
	LastUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"last_updated_by"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
