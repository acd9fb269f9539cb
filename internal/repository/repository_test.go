package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/database"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("recruitment_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func truncate(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("TRUNCATE users, jobs, candidates, application_history").Error)
}

func TestRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	jobs := NewJobRepository(db)
	candidates := NewCandidateRepository(db)
	history := NewHistoryRepository(db)

	t.Run("users", func(t *testing.T) {
		truncate(t, db)
		hr := &models.User{Name: "HR", Email: "hr@example.com", Role: models.RoleHR, Password: "hash"}
		require.NoError(t, users.Create(ctx, hr))
		require.NotEqual(t, uuid.Nil, hr.ID)

		err := users.Create(ctx, &models.User{Name: "Dup", Email: "hr@example.com", Role: models.RoleHR, Password: "hash"})
		assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

		found, err := users.FindByEmail(ctx, "hr@example.com")
		require.NoError(t, err)
		assert.Equal(t, hr.ID, found.ID)

		_, err = users.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, apperr.ErrRecordNotFound))

		n, err := users.CountByRole(ctx, models.RoleHR)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, users.Delete(ctx, hr.ID))
		assert.True(t, errors.Is(users.Delete(ctx, hr.ID), apperr.ErrRecordNotFound))
	})

	t.Run("jobs", func(t *testing.T) {
		truncate(t, db)
		hrID := uuid.New()
		base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		older := &models.Job{Code: "jb0301100011", Title: "Older", Status: models.JobStatusOpen, UploadedBy: uuid.New(), OpeningDate: base, CreatedAt: base}
		shadow := &models.Job{Code: "jb0301100011", Title: "Shadow", Status: models.JobStatusAllocated, UploadedBy: uuid.New(), AssignedHR: &hrID, OpeningDate: base.AddDate(0, 0, 5), CreatedAt: base.Add(time.Hour)}
		other := &models.Job{Code: "jb0302100022", Title: "Other", Status: models.JobStatusAllocated, UploadedBy: uuid.New(), AssignedHR: &hrID, OpeningDate: base.AddDate(0, 0, 10), CreatedAt: base.Add(2 * time.Hour)}
		for _, j := range []*models.Job{older, shadow, other} {
			require.NoError(t, jobs.Create(ctx, j))
		}

		byCode, err := jobs.FindByCode(ctx, "jb0301100011")
		require.NoError(t, err)
		assert.Equal(t, "Older", byCode.Title)

		_, err = jobs.FindByCode(ctx, "jb0000000000")
		assert.True(t, errors.Is(err, apperr.ErrRecordNotFound))

		all, err := jobs.List(ctx, services.JobQuery{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"Other", "Shadow", "Older"}, []string{all[0].Title, all[1].Title, all[2].Title})

		from, to := base.AddDate(0, 0, 1), base.AddDate(0, 0, 6)
		filtered, err := jobs.List(ctx, services.JobQuery{AssignedHR: &hrID, OpeningFrom: &from, OpeningTo: &to})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "Shadow", filtered[0].Title)

		limited, err := jobs.List(ctx, services.JobQuery{Status: models.JobStatusAllocated, Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, "Other", limited[0].Title)

		counts, err := jobs.CountByStatus(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[models.JobStatusOpen])
		assert.Equal(t, int64(2), counts[models.JobStatusAllocated])

		scoped, err := jobs.CountByStatus(ctx, &hrID)
		require.NoError(t, err)
		assert.Zero(t, scoped[models.JobStatusOpen])

		n, err := jobs.CountByAssignedHR(ctx, hrID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("candidates and history", func(t *testing.T) {
		truncate(t, db)
		creator := uuid.New()
		a := &models.Candidate{Name: "A", Email: "a@example.com", Phone: "1", JobCode: "jb1", Status: models.CandidateStatusApplied, CreatedBy: creator}
		b := &models.Candidate{Name: "B", Email: "b@example.com", Phone: "2", JobCode: "jb2", Status: models.CandidateStatusApplied, CreatedBy: creator}
		require.NoError(t, candidates.Create(ctx, a))
		require.NoError(t, candidates.Create(ctx, b))

		scoped, err := candidates.List(ctx, services.CandidateQuery{Scoped: true, JobCodes: []string{"jb1"}})
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, "A", scoped[0].Name)

		none, err := candidates.List(ctx, services.CandidateQuery{Scoped: true})
		require.NoError(t, err)
		assert.Empty(t, none)

		notes := "phone screen booked"
		actor := uuid.New()
		require.NoError(t, candidates.UpdateStatus(ctx, a.ID, models.CandidateStatusInProgress, &notes, actor))
		err = candidates.UpdateStatus(ctx, uuid.New(), models.CandidateStatusInProgress, nil, actor)
		assert.True(t, errors.Is(err, apperr.ErrRecordNotFound))

		stored, err := candidates.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CandidateStatusInProgress, stored.Status)
		require.NotNil(t, stored.LastUpdatedBy)
		assert.Equal(t, actor, *stored.LastUpdatedBy)

		counts, err := candidates.CountByStatus(ctx, services.CandidateQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[models.CandidateStatusApplied])
		assert.Equal(t, int64(1), counts[models.CandidateStatusInProgress])

		ts := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		for i, status := range []string{"in_progress", "interviewed", "selected"} {
			require.NoError(t, history.Append(ctx, &models.ApplicationHistory{
				CandidateID: a.ID, JobCode: "jb1", OldStatus: "applied", NewStatus: status,
				UpdatedBy: actor, Timestamp: ts.Add(time.Duration(i) * time.Minute),
			}))
		}

		entries, err := history.ListByCandidate(ctx, a.ID, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "selected", entries[0].NewStatus)
		assert.Equal(t, "interviewed", entries[1].NewStatus)
	})
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), apperr.ErrRecordNotFound)
	assert.True(t, apperr.HasCode(translate(gorm.ErrDuplicatedKey), apperr.CodeConflict))

	err := translate(errors.New("connection reset"))
	assert.True(t, apperr.HasCode(err, apperr.CodeDatabase))
	assert.ErrorContains(t, err, "connection reset")
}
