package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"iban-service/internal/consumers"

	"github.com/hibiken/asynq"
)

type Worker struct {
	Processor *consumers.BatchProcessor
}

func NewWorker(processor *consumers.BatchProcessor) *Worker {
	return &Worker{
		Processor: processor,
	}
}

func (w *Worker) HandleBatchValidate(ctx context.Context, t *asynq.Task) error {
	var p consumers.BatchValidateDTO
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	w.Processor.ProcessBatchValidate(p)
	return nil
}

func StartWorker(redisOpt asynq.RedisClientOpt, processor *consumers.BatchProcessor) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			// Specify how many concurrent workers to use
			Concurrency: 10,
			// Optionally specify multiple queues with different priority.
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	worker := NewWorker(processor)
	mux := asynq.NewServeMux()

	mux.HandleFunc(TypeBatchValidate, worker.HandleBatchValidate)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
