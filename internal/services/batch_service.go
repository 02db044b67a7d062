package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"iban-service/internal/models"
)

type BatchService struct {
	DB     *gorm.DB
	Client *asynq.Client
}

func NewBatchService(db *gorm.DB, client *asynq.Client) *BatchService {
	return &BatchService{DB: db, Client: client}
}

// Task Types (copied from worker/tasks.go to avoid cycle)
const (
	TypeBatchValidate = "iban:batch-validate"
)

// BatchValidatePayload mirrors the consumers DTO.
type BatchValidatePayload struct {
	JobReference string   `json:"job_reference"`
	Items        []string `json:"items"`
	ValidateBBAN bool     `json:"validate_bban"`
}

// CreateJob persists a pending validation job and enqueues its batch for the
// worker. The job reference doubles as the asynq task id, so re-submitting
// the same job is a no-op on the queue side.
func (s *BatchService) CreateJob(items []string, validateBBAN bool) (models.ValidationJob, error) {
	job := models.ValidationJob{
		Reference:    uuid.NewString(),
		Status:       models.JobStatusPending,
		ValidateBBAN: validateBBAN,
		TotalCount:   len(items),
	}
	if err := s.DB.Create(&job).Error; err != nil {
		return models.ValidationJob{}, err
	}

	taskData, err := json.Marshal(BatchValidatePayload{
		JobReference: job.Reference,
		Items:        items,
		ValidateBBAN: validateBBAN,
	})
	if err != nil {
		return models.ValidationJob{}, err
	}

	task := asynq.NewTask(TypeBatchValidate, taskData)
	if _, err := s.Client.Enqueue(task, asynq.TaskID(fmt.Sprintf("batch-validate:%s", job.Reference))); err != nil {
		s.DB.Model(&job).Update("status", models.JobStatusFailed)
		return models.ValidationJob{}, err
	}
	return job, nil
}

// GetJob resolves a job by reference together with a page of its records.
func (s *BatchService) GetJob(reference string, page, limit int) (models.ValidationJob, []models.ValidationRecord, int64, error) {
	var job models.ValidationJob
	if err := s.DB.Where("reference = ?", reference).First(&job).Error; err != nil {
		return models.ValidationJob{}, nil, 0, err
	}

	var total int64
	if err := s.DB.Model(&models.ValidationRecord{}).Where("job_id = ?", job.ID).Count(&total).Error; err != nil {
		return models.ValidationJob{}, nil, 0, err
	}

	var records []models.ValidationRecord
	offset := (page - 1) * limit
	err := s.DB.Where("job_id = ?", job.ID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return models.ValidationJob{}, nil, 0, err
	}
	return job, records, total, nil
}
