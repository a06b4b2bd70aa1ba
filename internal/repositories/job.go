package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilanjanc/ai-interviewer/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindAll() ([]models.Job, error)
	Update(id uuid.UUID, data *JobUpdateData) error
	Delete(id uuid.UUID) error
}

type JobUpdateData struct {
	Title       string
	Description string
	PostingDate string
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) Update(id uuid.UUID, data *JobUpdateData) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":        data.Title,
			"description":  data.Description,
			"posting_date": data.PostingDate,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}

	return nil
}

func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}

	return nil
}
