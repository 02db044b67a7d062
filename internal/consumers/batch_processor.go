package consumers

import (
	"log"

	"gorm.io/gorm"

	"iban-service/internal/models"
	"iban-service/internal/services"
)

// BatchValidateDTO is the asynq payload for one queued validation batch.
type BatchValidateDTO struct {
	JobReference string   `json:"job_reference"`
	Items        []string `json:"items"`
	ValidateBBAN bool     `json:"validate_bban"`
}

type BatchProcessor struct {
	DB *gorm.DB
}

func NewBatchProcessor(db *gorm.DB) *BatchProcessor {
	return &BatchProcessor{DB: db}
}

// ProcessBatchValidate validates every item of a queued batch, persists one
// record per item and finalizes the job counters. A missing job is logged
// and dropped; re-deliveries of a completed job are ignored.
func (p *BatchProcessor) ProcessBatchValidate(payload BatchValidateDTO) {
	var job models.ValidationJob
	if err := p.DB.Where("reference = ?", payload.JobReference).First(&job).Error; err != nil {
		log.Printf("Validation job %s not found: %v", payload.JobReference, err)
		return
	}
	if job.Status == models.JobStatusCompleted {
		log.Printf("Validation job %s already completed, skipping", payload.JobReference)
		return
	}

	if err := p.DB.Model(&job).Update("status", models.JobStatusProcessing).Error; err != nil {
		log.Printf("Failed to mark job %s processing: %v", payload.JobReference, err)
	}

	validCount, invalidCount := 0, 0
	for _, item := range payload.Items {
		report := services.BuildIBANReport(item, payload.ValidateBBAN)

		record := models.ValidationRecord{
			JobID:       job.ID,
			Input:       item,
			Valid:       report.Valid,
			CountryCode: report.CountryCode,
			BankCode:    report.BankCode,
			BIC:         report.BIC,
		}
		if report.Bank != nil {
			record.BankName = report.Bank.Name
		}
		if report.Error != nil {
			record.ErrorKind = report.Error.Kind
			record.ErrorDetail = report.Error.Message
		}
		if report.Valid {
			validCount++
		} else {
			invalidCount++
		}

		if err := p.DB.Create(&record).Error; err != nil {
			log.Printf("Failed to persist record for job %s: %v", payload.JobReference, err)
		}
	}

	updates := map[string]interface{}{
		"status":        models.JobStatusCompleted,
		"valid_count":   validCount,
		"invalid_count": invalidCount,
	}
	if err := p.DB.Model(&job).Updates(updates).Error; err != nil {
		log.Printf("Failed to finalize job %s: %v", payload.JobReference, err)
		return
	}
	log.Printf("Validation job %s completed: %d valid, %d invalid", payload.JobReference, validCount, invalidCount)
}
