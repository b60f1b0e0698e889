package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/provider"
	"github.com/marketfee-next/internal/queue"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupWorkerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingMethod{},
		&models.SnapshotOrder{},
		&models.SnapshotLineItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newTestConsumer(db *gorm.DB) *Consumer {
	orderRepo := repository.NewOrderRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	return NewConsumer(&provider.Container{
		OrderRepo:       orderRepo,
		SnapshotRepo:    snapshotRepo,
		SnapshotService: service.NewSnapshotService(orderRepo, snapshotRepo, nil, time.Second),
	})
}

func TestHandleOrderSnapshotWritesSnapshot(t *testing.T) {
	db := setupWorkerTestDB(t)
	consumer := newTestConsumer(db)

	order := &models.Order{
		CustomerID: "cus_1",
		Currency:   constants.CurrencyDefault,
		Status:     constants.OrderStatusCompleted,
		ParentAmounts: models.ParentAmounts{
			Total: models.NewNullMoney(decimal.NewFromInt(300)),
		},
	}
	items := []models.OrderItem{{Title: "Tee", Quantity: 1, UnitPrice: models.NewNullMoney(decimal.NewFromInt(300))}}
	if err := repository.NewOrderRepository(db).Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	task, err := queue.NewOrderSnapshotTask(queue.OrderSnapshotPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := consumer.handleOrderSnapshot(context.Background(), task); err != nil {
			t.Fatalf("handle snapshot #%d failed: %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&models.SnapshotOrder{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one snapshot, got %d", count)
	}
}

func TestHandleOrderSnapshotSkipsMissingOrder(t *testing.T) {
	consumer := newTestConsumer(setupWorkerTestDB(t))
	task, _ := queue.NewOrderSnapshotTask(queue.OrderSnapshotPayload{OrderID: "order_missing"})
	if err := consumer.handleOrderSnapshot(context.Background(), task); err != nil {
		t.Fatalf("missing order should be skipped, got %v", err)
	}
	empty, _ := queue.NewOrderSnapshotTask(queue.OrderSnapshotPayload{})
	if err := consumer.handleOrderSnapshot(context.Background(), empty); err != nil {
		t.Fatalf("empty payload should be skipped, got %v", err)
	}
}

func TestHandleOrderSnapshotRejectsMalformedPayload(t *testing.T) {
	consumer := newTestConsumer(setupWorkerTestDB(t))
	task := asynq.NewTask(queue.TaskOrderSnapshot, []byte("{"))
	err := consumer.handleOrderSnapshot(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("malformed payload should skip retry, got %v", err)
	}
}
