package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/infrastructure/queue"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/logger"
)

type asynqServer struct {
	*asynq.Server
}

func startAsynqServer(redisAddr string, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueEmail:   3,
				shared.QueueImages:  2,
				shared.QueueDefault: 1,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		logger.Info("worker starting", map[string]interface{}{"redis": redisAddr})
		if err := srv.Run(mux); err != nil {
			logger.Error("worker failed", err)
			os.Exit(1)
		}
	}()

	return &asynqServer{Server: srv}
}

func (s *asynqServer) Shutdown() {
	s.Server.Shutdown()
}

func startScheduler(redisAddr string) *queue.Scheduler {
	scheduler := queue.NewScheduler(redisAddr)
	if err := scheduler.RegisterJobs(); err != nil {
		logger.Error("failed to register scheduled jobs", err)
		os.Exit(1)
	}
	if err := scheduler.Start(); err != nil {
		logger.Error("failed to start scheduler", err)
		os.Exit(1)
	}
	return scheduler
}
