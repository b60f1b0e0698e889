package cache

import (
	"context"
	"time"
)

const defaultLockTTL = 30 * time.Second

func snapshotLockKey(orderID string) string {
	return Key("lock", "order_snapshot", orderID)
}

// AcquireSnapshotLock 获取订单快照写入锁，未启用 Redis 时直接放行
func AcquireSnapshotLock(ctx context.Context, orderID string, ttl time.Duration) (bool, error) {
	client := Client()
	if client == nil {
		return true, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return client.SetNX(ctx, snapshotLockKey(orderID), time.Now().Unix(), ttl).Result()
}

// ReleaseSnapshotLock 释放订单快照写入锁
func ReleaseSnapshotLock(ctx context.Context, orderID string) error {
	client := Client()
	if client == nil {
		return nil
	}
	return client.Del(ctx, snapshotLockKey(orderID)).Err()
}
