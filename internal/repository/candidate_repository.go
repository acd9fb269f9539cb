package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *models.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var c models.Candidate
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CandidateRepository) Save(ctx context.Context, c *models.Candidate) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

// UpdateStatus writes the status columns of one row in a single UPDATE.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string, actor uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"notes":           notes,
			"last_updated_by": actor,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrRecordNotFound
	}
	return nil
}

func (r *CandidateRepository) List(ctx context.Context, q services.CandidateQuery) ([]models.Candidate, error) {
	if q.Scoped && len(q.JobCodes) == 0 {
		return []models.Candidate{}, nil
	}
	query := r.db.WithContext(ctx).Model(&models.Candidate{})
	if q.Scoped {
		query = query.Where("job_code IN ?", q.JobCodes)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	var out []models.Candidate
	err := query.Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, translate(err)
}

func (r *CandidateRepository) CountByStatus(ctx context.Context, q services.CandidateQuery) (map[string]int64, error) {
	if q.Scoped && len(q.JobCodes) == 0 {
		return map[string]int64{}, nil
	}
	query := r.db.WithContext(ctx).Model(&models.Candidate{})
	if q.Scoped {
		query = query.Where("job_code IN ?", q.JobCodes)
	}
	var rows []statusCount
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return countsByStatus(rows), nil
}
