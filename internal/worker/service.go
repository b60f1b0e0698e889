package worker

import (
	"context"
	"errors"
	"time"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	serviceName           = "snapshot-worker"
	defaultConcurrency    = 10
	workerShutdownTimeout = 8 * time.Second
)

// ErrQueueDisabled 队列未启用时无法启动 worker
var ErrQueueDisabled = errors.New("queue disabled")

// Service 订单快照 worker
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	queues map[string]int
}

// NewService 创建快照 worker，注册消费者并接入统一日志
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, ErrQueueDisabled
	}
	if consumer == nil {
		return nil, errors.New("snapshot consumer is nil")
	}
	serverCfg := buildServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server: asynq.NewServer(queue.RedisOpt(cfg), serverCfg),
		mux:    mux,
		queues: serverCfg.Queues,
	}, nil
}

func buildServerConfig(cfg *config.QueueConfig) asynq.Config {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	queues := map[string]int{constants.QueueSnapshot: 6, constants.QueueDefault: 1}
	if len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return asynq.Config{
		Concurrency:     concurrency,
		Queues:          queues,
		ShutdownTimeout: workerShutdownTimeout,
		Logger:          logger.S().With("component", serviceName),
		ErrorHandler:    asynq.ErrorHandlerFunc(reportTaskError),
	}
}

// reportTaskError 记录任务失败；重试耗尽时升级为 error 级别
func reportTaskError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	taskType := ""
	if task != nil {
		taskType = task.Type()
	}
	if retried >= maxRetry {
		logger.Errorw("worker_task_exhausted", "task", taskType, "retried", retried, "error", err)
		return
	}
	logger.Warnw("worker_task_failed", "task", taskType, "retried", retried, "max_retry", maxRetry, "error", err)
}

// Name 服务名称
func (s *Service) Name() string {
	return serviceName
}

// Start 启动 worker 并阻塞到 ctx 结束
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("snapshot worker not initialized")
	}
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	logger.Infow("worker_started", "queues", s.queues)
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的任务结束后退出
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
