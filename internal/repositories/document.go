package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nilanjanc/ai-interviewer/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if err := d.db.Create(&document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := d.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return &doc, nil
}
