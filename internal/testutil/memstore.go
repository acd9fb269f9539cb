// Package testutil holds in-memory repositories and request helpers for
// package tests above the store layer.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/google/uuid"
)

type Users struct {
	mu   sync.Mutex
	byID map[uuid.UUID]models.User
}

func NewUsers() *Users {
	return &Users{byID: map[uuid.UUID]models.User{}}
}

func (f *Users) Create(_ context.Context, u *models.User) error {
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

func (f *Users) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &u, nil
}

func (f *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *Users) ListByRole(_ context.Context, role string) ([]models.User, error) {
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

func (f *Users) CountByRole(ctx context.Context, role string) (int64, error) {
	users, _ := f.ListByRole(ctx, role)
	return int64(len(users)), nil
}

func (f *Users) Save(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = *u
	return nil
}

func (f *Users) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return apperr.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

type Jobs struct {
	mu   sync.Mutex
	rows []models.Job
}

func (f *Jobs) Create(_ context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *j)
	return nil
}

func (f *Jobs) FindByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.rows {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *Jobs) FindByCode(_ context.Context, code string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.rows {
		if j.Code == code {
			return &j, nil
		}
	}
	return nil, apperr.ErrRecordNotFound
}

func (f *Jobs) List(_ context.Context, q services.JobQuery) ([]models.Job, error) {
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

func (f *Jobs) Save(_ context.Context, j *models.Job) error {
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

func (f *Jobs) CountByStatus(ctx context.Context, assignedHR *uuid.UUID) (map[string]int64, error) {
	jobs, _ := f.List(ctx, services.JobQuery{AssignedHR: assignedHR})
	out := map[string]int64{}
	for _, j := range jobs {
		out[j.Status]++
	}
	return out, nil
}

func (f *Jobs) CountByAssignedHR(ctx context.Context, hrID uuid.UUID) (int64, error) {
	jobs, _ := f.List(ctx, services.JobQuery{AssignedHR: &hrID})
	return int64(len(jobs)), nil
}

type Candidates struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Candidate
}

func NewCandidates() *Candidates {
	return &Candidates{rows: map[uuid.UUID]models.Candidate{}}
}

func (f *Candidates) Create(_ context.Context, c *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[c.ID] = *c
	return nil
}

func (f *Candidates) FindByID(_ context.Context, id uuid.UUID) (*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, apperr.ErrRecordNotFound
	}
	return &c, nil
}

func (f *Candidates) Save(_ context.Context, c *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[c.ID] = *c
	return nil
}

func (f *Candidates) UpdateStatus(_ context.Context, id uuid.UUID, status string, notes *string, actor uuid.UUID) error {
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

func (f *Candidates) List(_ context.Context, q services.CandidateQuery) ([]models.Candidate, error) {
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

func (f *Candidates) CountByStatus(ctx context.Context, q services.CandidateQuery) (map[string]int64, error) {
	rows, _ := f.List(ctx, q)
	out := map[string]int64{}
	for _, c := range rows {
		out[c.Status]++
	}
	return out, nil
}

type History struct {
	mu      sync.Mutex
	entries []models.ApplicationHistory
}

func (f *History) Append(_ context.Context, e *models.ApplicationHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *History) ListByCandidate(_ context.Context, id uuid.UUID, limit int) ([]models.ApplicationHistory, error) {
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

var (
	_ services.UserRepository      = (*Users)(nil)
	_ services.JobRepository       = (*Jobs)(nil)
	_ services.CandidateRepository = (*Candidates)(nil)
	_ services.HistoryRepository   = (*History)(nil)
)

// Store bundles one in-memory repository per table.
type Store struct {
	Users      *Users
	Jobs       *Jobs
	Candidates *Candidates
	History    *History
}

func NewStore() *Store {
	return &Store{
		Users:      NewUsers(),
		Jobs:       &Jobs{},
		Candidates: NewCandidates(),
		History:    &History{},
	}
}
