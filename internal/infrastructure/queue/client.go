package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/pkg/logger"
)

// Enqueuer is the narrow slice of asynq.Client the services depend on.
type Enqueuer interface {
	Enqueue(taskType string, payload interface{}, opts ...asynq.Option) error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(redisAddress string) (Enqueuer, *asynq.Client) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddress})
	return &asynqEnqueuer{client: client}, client
}

func (e *asynqEnqueuer) Enqueue(taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	info, err := e.client.Enqueue(asynq.NewTask(taskType, data), opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue task %s: %w", taskType, err)
	}

	logger.Info("task enqueued", map[string]interface{}{
		"type":  taskType,
		"id":    info.ID,
		"queue": info.Queue,
	})
	return nil
}
