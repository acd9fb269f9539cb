package services

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
)

// Authorizer enforces role gates and HR ownership of jobs.
type Authorizer struct {
	jobs JobRepository
}

func NewAuthorizer(jobs JobRepository) *Authorizer {
	return &Authorizer{jobs: jobs}
}

func (a *Authorizer) RequireRole(identity *models.User, role string) (*models.User, error) {
	if identity == nil {
		return nil, apperr.Authentication("Could not validate credentials")
	}
	if identity.Role != role {
		return nil, apperr.Authorization("Not enough permissions")
	}
	return identity, nil
}

// RequireJobOwnership loads the job by code and checks it is allocated to
// identity.
func (a *Authorizer) RequireJobOwnership(ctx context.Context, identity *models.User, jobCode string) (*models.Job, error) {
	job, err := a.jobs.FindByCode(ctx, jobCode)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, err
	}
	if !job.AssignedTo(identity.ID) {
		return nil, apperr.Authorization("Not authorized to access this job")
	}
	return job, nil
}
