package queue

import (
	"context"
	"testing"
	"time"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"

	"github.com/hibiken/asynq"
)

func TestOrderSnapshotTaskRoundTrip(t *testing.T) {
	task, err := NewOrderSnapshotTask(OrderSnapshotPayload{OrderID: "order_1"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskOrderSnapshot {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseOrderSnapshotPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.OrderID != "order_1" {
		t.Fatalf("unexpected order id: %s", payload.OrderID)
	}
}

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client without config must be disabled")
	}
	queued, err := client.EnqueueOrderSnapshot(context.Background(), "order_1")
	if err != nil || queued {
		t.Fatalf("disabled enqueue must be a no-op, queued=%v err=%v", queued, err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close disabled client failed: %v", err)
	}
}

func TestSnapshotQueueName(t *testing.T) {
	if got := SnapshotQueueName(nil); got != constants.QueueSnapshot {
		t.Fatalf("nil config should use snapshot queue, got %s", got)
	}
	cfg := &config.QueueConfig{Queues: map[string]int{constants.QueueDefault: 1}}
	if got := SnapshotQueueName(cfg); got != constants.QueueDefault {
		t.Fatalf("missing snapshot queue should fall back to default, got %s", got)
	}
	cfg.Queues[constants.QueueSnapshot] = 3
	if got := SnapshotQueueName(cfg); got != constants.QueueSnapshot {
		t.Fatalf("configured snapshot queue should be used, got %s", got)
	}
}

func TestRedisOpt(t *testing.T) {
	opt := RedisOpt(nil)
	if opt.Addr != "127.0.0.1:6379" || opt.DB != 0 {
		t.Fatalf("unexpected default opt: %+v", opt)
	}
	opt = RedisOpt(&config.QueueConfig{Host: " redis ", Port: 6380, DB: 2, Password: "pw"})
	if opt.Addr != "redis:6380" || opt.DB != 2 || opt.Password != "pw" {
		t.Fatalf("unexpected opt: %+v", opt)
	}
}

func TestSnapshotTaskOptionsUseOrderScopedID(t *testing.T) {
	opts := snapshotTaskOptions(constants.QueueSnapshot, "order_9")
	var taskID, queueName string
	for _, opt := range opts {
		switch opt.Type() {
		case asynq.TaskIDOpt:
			taskID = opt.Value().(string)
		case asynq.QueueOpt:
			queueName = opt.Value().(string)
		case asynq.RetentionOpt:
			if opt.Value().(time.Duration) != snapshotRetention {
				t.Fatalf("unexpected retention: %v", opt.Value())
			}
		}
	}
	if taskID != "order:snapshot:order_9" {
		t.Fatalf("unexpected task id: %s", taskID)
	}
	if queueName != constants.QueueSnapshot {
		t.Fatalf("unexpected queue: %s", queueName)
	}
}
