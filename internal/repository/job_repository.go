package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(job).Error)
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// FindByCode returns the oldest job carrying code. Codes are not unique, so
// a colliding later job is shadowed.
func (r *JobRepository) FindByCode(ctx context.Context, code string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Where("job_code = ?", code).
		Order("created_at ASC").
		First(&job).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, q services.JobQuery) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})
	if q.AssignedHR != nil {
		query = query.Scopes(assignedTo(*q.AssignedHR))
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.OpeningFrom != nil {
		query = query.Where("opening_date >= ?", *q.OpeningFrom)
	}
	if q.OpeningTo != nil {
		query = query.Where("opening_date <= ?", *q.OpeningTo)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Order("id DESC").Find(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepository) Save(ctx context.Context, job *models.Job) error {
	return translate(r.db.WithContext(ctx).Save(job).Error)
}

func (r *JobRepository) CountByStatus(ctx context.Context, assignedHR *uuid.UUID) (map[string]int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})
	if assignedHR != nil {
		query = query.Scopes(assignedTo(*assignedHR))
	}
	var rows []statusCount
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return countsByStatus(rows), nil
}

func (r *JobRepository) CountByAssignedHR(ctx context.Context, hrID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Scopes(assignedTo(hrID)).Count(&n).Error
	return n, translate(err)
}
