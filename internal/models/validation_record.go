package models

import (
	"time"
)

type ValidationRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID       uint      `gorm:"column:job_id;index;not null" json:"job_id"`
	Input       string    `gorm:"column:input;size:64" json:"input"`
	Valid       bool      `gorm:"column:valid;default:false" json:"valid"`
	ErrorKind   string    `gorm:"column:error_kind;size:64" json:"error_kind,omitempty"`
	ErrorDetail string    `gorm:"column:error_detail;size:255" json:"error_detail,omitempty"`
	CountryCode string    `gorm:"column:country_code;size:2" json:"country_code,omitempty"`
	BankCode    string    `gorm:"column:bank_code;size:32" json:"bank_code,omitempty"`
	BankName    string    `gorm:"column:bank_name;size:255" json:"bank_name,omitempty"`
	BIC         string    `gorm:"column:bic;size:11" json:"bic,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ValidationRecord) TableName() string {
	return "validation_records"
}
