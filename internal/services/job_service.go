package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/validation"
	"github.com/google/uuid"
)

const (
	sourceManualEntry = "Manual Entry"
	sourceCSVUpload   = "CSV Upload"

	// listLimit caps every collection read.
	listLimit = 100
)

type JobService struct {
	jobs  JobRepository
	users UserRepository
	auth  *Authorizer

	now    func() time.Time
	suffix func() int
}

func NewJobService(jobs JobRepository, users UserRepository, auth *Authorizer) *JobService {
	return &JobService{
		jobs:   jobs,
		users:  users,
		auth:   auth,
		now:    time.Now,
		suffix: func() int { return 10 + rand.IntN(90) },
	}
}

// newCode builds "jb" + MMDDHHMM + two digits. Collisions are not checked.
func (s *JobService) newCode(now time.Time) string {
	return fmt.Sprintf("jb%s%02d", now.Format("01021504"), s.suffix())
}

func (s *JobService) build(req *dto.CreateJobRequest, uploader *models.User, source string) models.Job {
	now := s.now()
	salary := req.SalaryPackage
	if salary == "" {
		salary = req.CTC
	}
	if req.SourceCompany != "" && source == sourceManualEntry {
		source = req.SourceCompany
	}
	return models.Job{
		ID:            uuid.New(),
		Code:          s.newCode(now),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		SalaryPackage: salary,
		SourceCompany: source,
		UploadedBy:    uploader.ID,
		Status:        models.JobStatusAllocated,
		OpeningDate:   now,
		CreatedAt:     now.UTC(),
	}
}

func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest, uploader *models.User) (*models.Job, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	job := s.build(req, uploader, sourceManualEntry)
	if err := s.jobs.Create(ctx, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// BulkCreate inserts jobs one at a time. It is not atomic: on failure the
// returned count is the number already stored.
func (s *JobService) BulkCreate(ctx context.Context, reqs []dto.CreateJobRequest, uploader *models.User) (int, error) {
	for i := range reqs {
		if err := validation.Struct(&reqs[i]); err != nil {
			return 0, err
		}
	}
	added := 0
	for i := range reqs {
		job := s.build(&reqs[i], uploader, sourceCSVUpload)
		if err := s.jobs.Create(ctx, &job); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func (s *JobService) Update(ctx context.Context, code string, patch *dto.JobPatch) (*models.Job, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}
	job, err := s.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.SalaryPackage != nil {
		job.SalaryPackage = *patch.SalaryPackage
	}
	if patch.SourceCompany != nil {
		job.SourceCompany = *patch.SourceCompany
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.OpeningDate != nil {
		job.OpeningDate = *patch.OpeningDate
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// List returns jobs newest first. When scope is an HR user the result is
// restricted to jobs allocated to them; admin results carry the assigned HR
// name.
func (s *JobService) List(ctx context.Context, filter *dto.JobFilter, scope *models.User) ([]dto.JobResponse, error) {
	if err := validation.Struct(filter); err != nil {
		return nil, err
	}
	q := JobQuery{Status: filter.Status, Limit: listLimit}

	if filter.OpeningDateFrom != "" {
		from, err := parseDate("opening_date_from", filter.OpeningDateFrom)
		if err != nil {
			return nil, err
		}
		q.OpeningFrom = &from
	}
	if filter.OpeningDateTo != "" {
		to, err := parseDate("opening_date_to", filter.OpeningDateTo)
		if err != nil {
			return nil, err
		}
		to = endOfDay(to)
		q.OpeningTo = &to
	}

	enrich := true
	if scope != nil && scope.IsHR() {
		q.AssignedHR = &scope.ID
		enrich = false
	} else if filter.AssignedHR != "" {
		hrID, err := uuid.Parse(filter.AssignedHR)
		if err != nil {
			return nil, apperr.BadRequest("Invalid assigned_hr")
		}
		q.AssignedHR = &hrID
	}

	jobs, err := s.jobs.List(ctx, q)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{}
	if enrich {
		hrUsers, err := s.users.ListByRole(ctx, models.RoleHR)
		if err != nil {
			return nil, err
		}
		for _, u := range hrUsers {
			names[u.ID] = u.Name
		}
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp := dto.JobResponse{Job: job}
		if enrich && job.AssignedHR != nil {
			if name, ok := names[*job.AssignedHR]; ok {
				resp.AssignedHRName = name
			} else {
				resp.AssignedHRName = "Unknown"
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// Allocate assigns the job to an HR user and marks it allocated. The target
// must exist with role hr.
func (s *JobService) Allocate(ctx context.Context, code string, hrID uuid.UUID) (*models.Job, error) {
	hr, err := s.users.FindByID(ctx, hrID)
	if err != nil && !errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, err
	}
	if hr == nil || !hr.IsHR() {
		return nil, apperr.NotFound("HR user not found")
	}

	job, err := s.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	job.AssignedHR = &hr.ID
	job.Status = models.JobStatusAllocated
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// SetStatus lets the assigned HR user move a job to any declared status.
// There is no transition guard.
func (s *JobService) SetStatus(ctx context.Context, code, status string, actor *models.User) (*models.Job, error) {
	if err := validation.Var("status", status, "required,oneof=open allocated closed submit"); err != nil {
		return nil, err
	}
	job, err := s.auth.RequireJobOwnership(ctx, actor, code)
	if err != nil {
		return nil, err
	}
	job.Status = status
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) findByCode(ctx context.Context, code string) (*models.Job, error) {
	job, err := s.jobs.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.Validation("Validation error", apperr.FieldError{
		Field:   field,
		Message: "must be a date in YYYY-MM-DD format",
	})
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999000, t.Location())
}
