package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PostingDate string    `gorm:"type:text" json:"posting_date"`
	Status      JobStatus `gorm:"not null;default:'Open'" json:"status"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
