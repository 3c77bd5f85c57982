package queue

import (
	"context"
	"fmt"
	"time"

	"localxp-api/core/logger"

	"github.com/hibiken/asynq"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) clientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

// Worker runs the asynq server and scheduler of the process.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewWorker(cfg RedisConfig, loc *time.Location) *Worker {
	server := asynq.NewServer(cfg.clientOpt(), asynq.Config{
		// refreshes must never overlap
		Concurrency: 1,
		Logger:      asynqLogger{},
	})
	scheduler := asynq.NewScheduler(cfg.clientOpt(), &asynq.SchedulerOpts{
		Location: loc,
		Logger:   asynqLogger{},
	})
	return &Worker{
		server:    server,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
	}
}

func (w *Worker) Handle(taskType string, handler func(ctx context.Context, task *asynq.Task) error) {
	w.mux.HandleFunc(taskType, handler)
}

// Schedule registers a periodic task, cronspec accepts "@every 30m" style specs.
func (w *Worker) Schedule(cronspec string, task *asynq.Task, opts ...asynq.Option) error {
	entryID, err := w.scheduler.Register(cronspec, task, opts...)
	if err != nil {
		return fmt.Errorf("register %s: %w", task.Type(), err)
	}
	logger.Info("Queue:Schedule", "task", task.Type(), "cron", cronspec, "entry_id", entryID)
	return nil
}

func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("start asynq server: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return fmt.Errorf("start asynq scheduler: %w", err)
	}
	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func NewClient(cfg RedisConfig) *asynq.Client {
	return asynq.NewClient(cfg.clientOpt())
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.Debug("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...interface{})  { logger.Info("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...interface{})  { logger.Warn("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...interface{}) { logger.Error("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...interface{}) { logger.Error("asynq:fatal", "detail", fmt.Sprint(args...)) }
