package models

import (
	"time"

	"github.com/google/uuid"
)

// Document records a resume upload. The file itself lives on disk under
// the storage service's upload path.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
