package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilanjanc/ai-interviewer/internal/models"
)

type ResultRepository interface {
	Create(record *models.ScoreRecord) error
	FindByJobID(jobID uuid.UUID) ([]models.ScoreRecord, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create writes one candidate score. Records are write-once; there is no
// update path.
func (r *resultRepository) Create(record *models.ScoreRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

func (r *resultRepository) FindByJobID(jobID uuid.UUID) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord
	err := r.db.
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return records, nil
}
