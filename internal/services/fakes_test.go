package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/google/uuid"
)

type fakeUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return apperr.Conflict("Record already exists")
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *fakeUsers) ListByRole(_ context.Context, role string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) CountByRole(ctx context.Context, role string) (int64, error) {
	users, _ := f.ListByRole(ctx, role)
	return int64(len(users)), nil
}

func (f *fakeUsers) Save(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return apperr.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeJobs struct {
	mu   sync.Mutex
	rows []models.Job
}

func (f *fakeJobs) Create(_ context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *j)
	return nil
}

func (f *fakeJobs) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.rows {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *fakeJobs) FindByCode(_ context.Context, code string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.rows {
		if j.Code == code {
			return &j, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *fakeJobs) List(_ context.Context, q JobQuery) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, j := range f.rows {
		if q.Status != "" && j.Status != q.Status {
			continue
		}
		if q.AssignedHR != nil && !j.AssignedTo(*q.AssignedHR) {
			continue
		}
		if q.OpeningFrom != nil && j.OpeningDate.Before(*q.OpeningFrom) {
			continue
		}
		if q.OpeningTo != nil && j.OpeningDate.After(*q.OpeningTo) {
			continue
		}
		out = append(out, j)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID.String() > out[b].ID.String()
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeJobs) Save(_ context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == j.ID {
			f.rows[i] = *j
			return nil
		}
	}
	f.rows = append(f.rows, *j)
	return nil
}

func (f *fakeJobs) CountByStatus(ctx context.Context, assignedHR *uuid.UUID) (map[string]int64, error) {
	jobs, _ := f.List(ctx, JobQuery{AssignedHR: assignedHR})
	out := map[string]int64{}
	for _, j := range jobs {
		out[j.Status]++
	}
	return out, nil
}

func (f *fakeJobs) CountByAssignedHR(ctx context.Context, hrID uuid.UUID) (int64, error) {
	jobs, _ := f.List(ctx, JobQuery{AssignedHR: &hrID})
	return int64(len(jobs)), nil
}

type fakeCandidates struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Candidate
}

func newFakeCandidates() *fakeCandidates {
	return &fakeCandidates{rows: map[uuid.UUID]models.Candidate{}}
}

func (f *fakeCandidates) Create(_ context.Context, c *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCandidates) FindByID(_ context.Context, id uuid.UUID) (*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeCandidates) Save(_ context.Context, c *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCandidates) UpdateStatus(_ context.Context, id uuid.UUID, status string, notes *string, actor uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return apperr.ErrRecordNotFound
	}
	c.Status = status
	c.Notes = notes
	c.LastUpdatedBy = &actor
	f.rows[id] = c
	return nil
}

func (f *fakeCandidates) List(_ context.Context, q CandidateQuery) ([]models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	allowed := map[string]bool{}
	for _, code := range q.JobCodes {
		allowed[code] = true
	}
	var out []models.Candidate
	for _, c := range f.rows {
		if q.Scoped && !allowed[c.JobCode] {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID.String() > out[b].ID.String()
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (f *fakeCandidates) CountByStatus(ctx context.Context, q CandidateQuery) (map[string]int64, error) {
	rows, _ := f.List(ctx, q)
	out := map[string]int64{}
	for _, c := range rows {
		out[c.Status]++
	}
	return out, nil
}

type fakeHistory struct {
	mu      sync.Mutex
	entries []models.ApplicationHistory
}

func (f *fakeHistory) Append(_ context.Context, e *models.ApplicationHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeHistory) ListByCandidate(_ context.Context, id uuid.UUID, limit int) ([]models.ApplicationHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ApplicationHistory
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].CandidateID == id {
			out = append(out, f.entries[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// env wires every service over fresh fakes.
type env struct {
	users      *fakeUsers
	jobs       *fakeJobs
	candidates *fakeCandidates
	history    *fakeHistory

	creds      *CredentialService
	auth       *AuthService
	authorizer *Authorizer
	jobSvc     *JobService
	candSvc    *CandidateService
	audit      *AuditTrail
	dashboard  *DashboardService
	userSvc    *UserService
}

func newEnv() *env {
	e := &env{
		users:      newFakeUsers(),
		jobs:       &fakeJobs{},
		candidates: newFakeCandidates(),
		history:    &fakeHistory{},
	}
	e.creds = NewCredentialService("test-secret", 30*time.Minute)
	e.auth = NewAuthService(e.users, e.creds)
	e.authorizer = NewAuthorizer(e.jobs)
	e.audit = NewAuditTrail(e.history)
	e.jobSvc = NewJobService(e.jobs, e.users, e.authorizer)
	e.candSvc = NewCandidateService(e.candidates, e.jobs, e.audit, e.authorizer)
	e.dashboard = NewDashboardService(e.users, e.jobs, e.candidates)
	e.userSvc = NewUserService(e.users, e.jobs, e.creds)
	return e
}

func (e *env) addUser(role, email string) *models.User {
	u := models.User{ID: uuid.New(), Name: role + " user", Email: email, Role: role}
	_ = e.users.Create(context.Background(), &u)
	return &u
}
