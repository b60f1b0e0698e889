package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/provider"
	"github.com/marketfee-next/internal/queue"
	"github.com/marketfee-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderSnapshot, c.handleOrderSnapshot)
}

func (c *Consumer) handleOrderSnapshot(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_order_snapshot_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderSnapshotPayload(task)
	if err != nil {
		logger.Warnw("worker_order_snapshot_unmarshal_failed", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	orderID := strings.TrimSpace(payload.OrderID)
	if orderID == "" {
		logger.Debugw("worker_order_snapshot_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.SnapshotService == nil {
		logger.Warnw("worker_order_snapshot_skip_service_nil", "order_id", orderID)
		return nil
	}

	created, err := c.SnapshotService.SnapshotOrder(ctx, orderID)
	switch {
	case err == nil:
		logger.Debugw("worker_order_snapshot_done", "order_id", orderID, "created", created)
		return nil
	case errors.Is(err, service.ErrOrderNotFound):
		logger.Warnw("worker_order_snapshot_skip_order_not_found", "order_id", orderID)
		return nil
	default:
		logger.Warnw("worker_order_snapshot_failed", "order_id", orderID, "error", err)
		return err
	}
}
