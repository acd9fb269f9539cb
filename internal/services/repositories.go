package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/google/uuid"
)

// Store contracts consumed by the services. Implementations return
// apperr.ErrRecordNotFound for missing rows and apperr errors for everything
// else.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobQuery is a conjunction; zero fields do not filter.
type JobQuery struct {
	Status      string
	OpeningFrom *time.Time
	OpeningTo   *time.Time
	AssignedHR  *uuid.UUID
	Limit       int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	FindByCode(ctx context.Context, code string) (*models.Job, error)
	List(ctx context.Context, q JobQuery) ([]models.Job, error)
	Save(ctx context.Context, job *models.Job) error
	CountByStatus(ctx context.Context, assignedHR *uuid.UUID) (map[string]int64, error)
	CountByAssignedHR(ctx context.Context, hrID uuid.UUID) (int64, error)
}

// CandidateQuery restricts candidates to JobCodes when Scoped is set. A
// scoped query with no codes matches nothing.
type CandidateQuery struct {
	JobCodes []string
	Scoped   bool
	Limit    int
}

type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	Save(ctx context.Context, c *models.Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string, actor uuid.UUID) error
	List(ctx context.Context, q CandidateQuery) ([]models.Candidate, error)
	CountByStatus(ctx context.Context, q CandidateQuery) (map[string]int64, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry *models.ApplicationHistory) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]models.ApplicationHistory, error)
}
