package queue

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	snapshotMaxRetry  = 5
	snapshotRetention = 24 * time.Hour
)

// Client 订单快照任务投递端，未启用队列时所有投递都是空操作
type Client struct {
	inner *asynq.Client
	queue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{queue: constants.QueueSnapshot}, nil
	}
	return &Client{
		inner: asynq.NewClient(RedisOpt(cfg)),
		queue: SnapshotQueueName(cfg),
	}, nil
}

// Enabled 判断是否可以投递
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueOrderSnapshot 投递订单快照任务；以订单号作为任务 ID，保留期内重复投递返回 false
func (c *Client) EnqueueOrderSnapshot(ctx context.Context, orderID string) (bool, error) {
	orderID = strings.TrimSpace(orderID)
	if !c.Enabled() || orderID == "" {
		return false, nil
	}
	task, err := NewOrderSnapshotTask(OrderSnapshotPayload{OrderID: orderID})
	if err != nil {
		return false, err
	}
	_, err = c.inner.EnqueueContext(ctx, task, snapshotTaskOptions(c.queue, orderID)...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, asynq.ErrTaskIDConflict), errors.Is(err, asynq.ErrDuplicateTask):
		return false, nil
	default:
		return false, err
	}
}

func snapshotTaskOptions(queueName, orderID string) []asynq.Option {
	return []asynq.Option{
		asynq.Queue(queueName),
		asynq.TaskID(snapshotTaskID(orderID)),
		asynq.MaxRetry(snapshotMaxRetry),
		asynq.Retention(snapshotRetention),
	}
}

func snapshotTaskID(orderID string) string {
	return TaskOrderSnapshot + ":" + orderID
}

// SnapshotQueueName 快照任务所在队列；配置里没有快照队列时退回默认队列
func SnapshotQueueName(cfg *config.QueueConfig) string {
	if cfg == nil || len(cfg.Queues) == 0 {
		return constants.QueueSnapshot
	}
	if _, ok := cfg.Queues[constants.QueueSnapshot]; ok {
		return constants.QueueSnapshot
	}
	return constants.QueueDefault
}

// RedisOpt 队列 Redis 连接参数，worker 与投递端共用
func RedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := "127.0.0.1", 6379
	opt := asynq.RedisClientOpt{}
	if cfg != nil {
		if h := strings.TrimSpace(cfg.Host); h != "" {
			host = h
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	return opt
}
