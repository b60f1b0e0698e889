package queue

import (
	"encoding/json"

	"github.com/marketfee-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderSnapshot 订单完成快照任务
	TaskOrderSnapshot = constants.TaskOrderSnapshot
)

// OrderSnapshotPayload 订单快照任务载荷
type OrderSnapshotPayload struct {
	OrderID string `json:"order_id"`
}

// NewOrderSnapshotTask 创建订单快照任务
func NewOrderSnapshotTask(payload OrderSnapshotPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderSnapshot, body), nil
}

// ParseOrderSnapshotPayload 解析订单快照任务载荷
func ParseOrderSnapshotPayload(task *asynq.Task) (OrderSnapshotPayload, error) {
	var payload OrderSnapshotPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
