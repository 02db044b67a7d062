package models

import (
	"time"
)

// Job statuses
const (
	JobStatusPending    = 0
	JobStatusProcessing = 1
	JobStatusCompleted  = 2
	JobStatusFailed     = 3
)

type ValidationJob struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference    string    `gorm:"column:reference;size:36;uniqueIndex;not null" json:"reference"`
	Status       int       `gorm:"column:status;default:0" json:"status"`
	ValidateBBAN bool      `gorm:"column:validate_bban;default:false" json:"validate_bban"`
	TotalCount   int       `gorm:"column:total_count;default:0" json:"total_count"`
	ValidCount   int       `gorm:"column:valid_count;default:0" json:"valid_count"`
	InvalidCount int       `gorm:"column:invalid_count;default:0" json:"invalid_count"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ValidationJob) TableName() string {
	return "validation_jobs"
}
