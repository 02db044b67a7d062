package worker

import (
	"encoding/json"

	"iban-service/internal/consumers"

	"github.com/hibiken/asynq"
)

// Task Types
const (
	TypeBatchValidate = "iban:batch-validate"
)

// Task Creators

func NewBatchValidateTask(payload consumers.BatchValidateDTO) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBatchValidate, data), nil
}
