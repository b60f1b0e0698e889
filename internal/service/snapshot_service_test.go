package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/repository"
)

func TestSnapshotServiceSnapshotOrderIsAppendOnly(t *testing.T) {
	env := newServiceTestEnv(t, "snapshot_service")
	order := env.createOrder(t, "cus_1", constants.OrderStatusCompleted)
	svc := NewSnapshotService(env.orderRepo, env.snapshotRepo, env.engine, time.Second)

	created, err := svc.SnapshotOrder(context.Background(), order.ID)
	if err != nil || !created {
		t.Fatalf("expected snapshot to be created, created=%v err=%v", created, err)
	}
	created, err = svc.SnapshotOrder(context.Background(), order.ID)
	if err != nil || created {
		t.Fatalf("expected second snapshot to be a no-op, created=%v err=%v", created, err)
	}

	snapshot, err := svc.GetByOrderID(order.ID)
	if err != nil {
		t.Fatalf("get snapshot failed: %v", err)
	}
	if snapshot.CustomerID != "cus_1" || snapshot.Email != "cus_1@example.com" {
		t.Fatalf("unexpected snapshot header: %+v", snapshot)
	}
	mustMoney(t, snapshot.Total, 1120, "total")

	list, total, err := svc.List(repository.SnapshotListFilter{CustomerID: "cus_1"})
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("unexpected snapshot list: total=%d err=%v", total, err)
	}
}

func TestSnapshotServiceErrors(t *testing.T) {
	env := newServiceTestEnv(t, "snapshot_service_errors")
	svc := NewSnapshotService(env.orderRepo, env.snapshotRepo, env.engine, time.Second)

	if _, err := svc.SnapshotOrder(context.Background(), "order_missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
	if _, err := svc.GetByOrderID("order_missing"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected snapshot not found, got %v", err)
	}
}
