package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is a candidate's final quiz score for one job posting.
// Written once after the candidate submits; never updated.
type ScoreRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID          uuid.UUID `gorm:"type:uuid;not null" json:"job_id"`
	Name           string    `gorm:"type:text" json:"name"`
	Email          string    `gorm:"type:text" json:"email"`
	Phone          string    `gorm:"type:text" json:"phone"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"-"`
}

func (ScoreRecord) TableName() string {
	return "results"
}
