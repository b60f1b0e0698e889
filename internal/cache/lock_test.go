package cache

import (
	"context"
	"testing"
	"time"

	"github.com/marketfee-next/internal/config"
)

func TestAcquireSnapshotLockWithoutRedis(t *testing.T) {
	if err := InitRedis(nil); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	ok, err := AcquireSnapshotLock(context.Background(), "order_1", time.Second)
	if err != nil {
		t.Fatalf("acquire lock failed: %v", err)
	}
	if !ok {
		t.Fatalf("lock must pass through when redis is disabled")
	}
	if err := ReleaseSnapshotLock(context.Background(), "order_1"); err != nil {
		t.Fatalf("release lock failed: %v", err)
	}
	if err := Ping(context.Background()); err != nil {
		t.Fatalf("disabled redis ping should succeed: %v", err)
	}
}

func TestSnapshotLockKeyUsesPrefix(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false, Prefix: "ignored"}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	if got := snapshotLockKey("order_1"); got != "mf:lock:order_snapshot:order_1" {
		t.Fatalf("unexpected key: %s", got)
	}

	if err := InitRedis(&config.RedisConfig{Enabled: true, Prefix: " shop ", Port: 6390}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	defer Close()
	if !Enabled() {
		t.Fatalf("redis should be enabled")
	}
	if got := snapshotLockKey("order_1"); got != "shop:lock:order_snapshot:order_1" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := Key("rate", " ", "public"); got != "shop:rate:public" {
		t.Fatalf("blank parts should be skipped: %s", got)
	}
}
