package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/validation"
	"github.com/google/uuid"
)

const unknownJob = "Unknown Job"

// mutableCandidateFields is the set of JSON keys a candidate patch may
// carry: the core fields plus every profile attribute.
var mutableCandidateFields = candidateFieldSet()

func candidateFieldSet() map[string]bool {
	set := map[string]bool{
		"name": true, "email": true, "phone": true, "job_code": true,
		"status": true, "notes": true,
	}
	t := reflect.TypeOf(models.CandidateProfile{})
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			set[name] = true
		}
	}
	return set
}

// candidateCore is checked after every write path.
type candidateCore struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	JobCode string `json:"job_code" validate:"required,max=20"`
	Status  string `json:"status" validate:"required,oneof=applied in_progress interviewed selected rejected"`
}

func validateCandidate(c *models.Candidate) error {
	return validation.Struct(&candidateCore{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		JobCode: c.JobCode,
		Status:  c.Status,
	})
}

type CandidateService struct {
	candidates CandidateRepository
	jobs       JobRepository
	audit      *AuditTrail
	auth       *Authorizer

	now func() time.Time
}

func NewCandidateService(candidates CandidateRepository, jobs JobRepository, audit *AuditTrail, auth *Authorizer) *CandidateService {
	return &CandidateService{
		candidates: candidates,
		jobs:       jobs,
		audit:      audit,
		auth:       auth,
		now:        time.Now,
	}
}

// Create stores a new application. The referenced job must be allocated to
// the actor.
func (s *CandidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest, actor *models.User) (*models.Candidate, error) {
	if req.Status == "" {
		req.Status = models.CandidateStatusApplied
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByCode(ctx, req.JobCode)
	if err != nil && !errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, err
	}
	if job == nil || !job.AssignedTo(actor.ID) {
		return nil, apperr.Authorization("Not authorized to add candidates to this job")
	}

	c := models.Candidate{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		JobCode:          req.JobCode,
		CandidateProfile: req.CandidateProfile,
		Status:           req.Status,
		CreatedBy:        actor.ID,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.candidates.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CandidateService) Get(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	c, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.NotFound("Candidate not found")
		}
		return nil, err
	}
	return c, nil
}

// Update merges patch over the stored candidate. Absent and null keys keep
// the stored value, unknown keys are ignored. A status change is recorded in
// the audit trail. With strict set, changing status or job_code requires the
// candidate's job, and any new job, to be allocated to actor.
func (s *CandidateService) Update(ctx context.Context, id uuid.UUID, patch dto.CandidatePatch, actor *models.User, strict bool) (*models.Candidate, error) {
	stored, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := mergeCandidate(stored, patch)
	if err != nil {
		return nil, err
	}
	if err := validateCandidate(updated); err != nil {
		return nil, err
	}

	statusChanged := updated.Status != stored.Status
	jobChanged := updated.JobCode != stored.JobCode

	if strict && (statusChanged || jobChanged) {
		if err := s.requireCandidateJob(ctx, stored.JobCode, actor); err != nil {
			return nil, err
		}
	}
	if jobChanged {
		target, err := s.jobs.FindByCode(ctx, updated.JobCode)
		if err != nil {
			if errors.Is(err, apperr.ErrRecordNotFound) {
				return nil, apperr.NotFound("Job not found")
			}
			return nil, err
		}
		if strict && !target.AssignedTo(actor.ID) {
			return nil, apperr.Authorization("Not authorized to update this candidate")
		}
	}

	updated.LastUpdatedBy = &actor.ID
	if err := s.candidates.Save(ctx, updated); err != nil {
		return nil, err
	}

	if statusChanged {
		if err := s.audit.Append(ctx, updated.ID, updated.JobCode, stored.Status, updated.Status, actor.ID, updated.Notes); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// requireCandidateJob fails unless the job behind code is allocated to actor.
func (s *CandidateService) requireCandidateJob(ctx context.Context, code string, actor *models.User) error {
	job, err := s.jobs.FindByCode(ctx, code)
	if err != nil && !errors.Is(err, apperr.ErrRecordNotFound) {
		return err
	}
	if job == nil || !job.AssignedTo(actor.ID) {
		return apperr.Authorization("Not authorized to update this candidate")
	}
	return nil
}

// mergeCandidate returns a copy of stored with the mutable keys of patch
// applied. The copy shares no slices or pointers with stored.
func mergeCandidate(stored *models.Candidate, patch dto.CandidatePatch) (*models.Candidate, error) {
	filtered := make(map[string]json.RawMessage, len(patch))
	for key, raw := range patch {
		if !mutableCandidateFields[key] || isNull(raw) {
			continue
		}
		filtered[key] = raw
	}

	updated := *stored
	updated.ExperienceEntries = append(updated.ExperienceEntries[:0:0], stored.ExperienceEntries...)
	updated.SkillAssessments = append(updated.SkillAssessments[:0:0], stored.SkillAssessments...)
	if stored.Notes != nil {
		notes := *stored.Notes
		updated.Notes = &notes
	}
	if stored.LastUpdatedBy != nil {
		by := *stored.LastUpdatedBy
		updated.LastUpdatedBy = &by
	}
	if len(filtered) == 0 {
		return &updated, nil
	}

	body, err := json.Marshal(filtered)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := json.Unmarshal(body, &updated); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperr.Validation("Validation error", apperr.FieldError{
				Field:   typeErr.Field,
				Message: "must be of type " + typeErr.Type.String(),
			})
		}
		return nil, apperr.BadRequest("Invalid candidate payload")
	}
	return &updated, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || strings.TrimSpace(string(raw)) == "null"
}

// List returns candidates newest first with their job title. HR users only
// see candidates under jobs allocated to them.
func (s *CandidateService) List(ctx context.Context, scope *models.User) ([]dto.CandidateResponse, error) {
	jobQuery := JobQuery{}
	candidateQuery := CandidateQuery{Limit: listLimit}
	if scope.IsHR() {
		jobQuery.AssignedHR = &scope.ID
	}

	jobs, err := s.jobs.List(ctx, jobQuery)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(jobs))
	// Jobs arrive newest first; the oldest job wins a shared code, as in
	// FindByCode.
	for _, j := range jobs {
		titles[j.Code] = j.Title
	}

	if scope.IsHR() {
		candidateQuery.Scoped = true
		candidateQuery.JobCodes = jobCodes(jobs)
	}

	candidates, err := s.candidates.List(ctx, candidateQuery)
	if err != nil {
		return nil, err
	}
	return decorate(candidates, titles), nil
}

// ListForJob returns the candidates of one job allocated to actor.
func (s *CandidateService) ListForJob(ctx context.Context, code string, actor *models.User) ([]dto.CandidateResponse, error) {
	job, err := s.auth.RequireJobOwnership(ctx, actor, code)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates.List(ctx, CandidateQuery{
		Scoped:   true,
		JobCodes: []string{job.Code},
		Limit:    listLimit,
	})
	if err != nil {
		return nil, err
	}
	return decorate(candidates, map[string]string{job.Code: job.Title}), nil
}

// SetStatus writes the new status and notes, then appends one audit entry.
// With strict set the candidate's job must be allocated to actor. The two
// writes do not share a transaction.
func (s *CandidateService) SetStatus(ctx context.Context, id uuid.UUID, status string, notes *string, actor *models.User, strict bool) error {
	if err := validation.Var("status", status, "required,oneof=applied in_progress interviewed selected rejected"); err != nil {
		return err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if strict {
		if err := s.requireCandidateJob(ctx, c.JobCode, actor); err != nil {
			return err
		}
	}

	if err := s.candidates.UpdateStatus(ctx, c.ID, status, notes, actor.ID); err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return apperr.NotFound("Candidate not found")
		}
		return err
	}
	return s.audit.Append(ctx, c.ID, c.JobCode, c.Status, status, actor.ID, notes)
}

func jobCodes(jobs []models.Job) []string {
	codes := make([]string, 0, len(jobs))
	for _, j := range jobs {
		codes = append(codes, j.Code)
	}
	return codes
}

func decorate(candidates []models.Candidate, titles map[string]string) []dto.CandidateResponse {
	out := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		title, ok := titles[c.JobCode]
		if !ok {
			title = unknownJob
		}
		out = append(out, dto.CandidateResponse{
			Candidate:      c,
			AppliedFor:     title,
			JobTitle:       title,
			TitlePosition:  title,
			RoleAppliedFor: title,
		})
	}
	return out
}
