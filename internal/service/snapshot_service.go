package service

import (
	"context"
	"strings"
	"time"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/servicefee"
)

// SnapshotService 订单快照服务
type SnapshotService struct {
	orderRepo    repository.OrderRepository
	snapshotRepo repository.SnapshotRepository
	engine       *servicefee.Engine
	lockTTL      time.Duration
}

// NewSnapshotService 创建订单快照服务
func NewSnapshotService(orderRepo repository.OrderRepository, snapshotRepo repository.SnapshotRepository, engine *servicefee.Engine, lockTTL time.Duration) *SnapshotService {
	return &SnapshotService{
		orderRepo:    orderRepo,
		snapshotRepo: snapshotRepo,
		engine:       engine,
		lockTTL:      lockTTL,
	}
}

// SnapshotOrder 为订单写入快照；已有快照时直接返回 false
func (s *SnapshotService) SnapshotOrder(ctx context.Context, orderID string) (bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return false, ErrOrderNotFound
	}
	locked, err := cache.AcquireSnapshotLock(ctx, orderID, s.lockTTL)
	if err != nil {
		logger.Ctx(ctx).Warnw("snapshot_lock_acquire_failed", "order_id", orderID, "error", err)
	} else if !locked {
		return false, ErrSnapshotInProgress
	}
	defer func() {
		if !locked {
			return
		}
		if err := cache.ReleaseSnapshotLock(ctx, orderID); err != nil {
			logger.Ctx(ctx).Warnw("snapshot_lock_release_failed", "order_id", orderID, "error", err)
		}
	}()

	existing, err := s.snapshotRepo.GetByOrderID(orderID)
	if err != nil {
		return false, ErrSnapshotWriteFailed
	}
	if existing != nil {
		return false, nil
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return false, ErrOrderFetchFailed
	}
	if order == nil {
		return false, ErrOrderNotFound
	}

	if s.engine != nil {
		result, summary, err := s.engine.ApplyToContainer(ctx, orderContainer(order))
		if err != nil {
			logger.Ctx(ctx).Errorw("snapshot_service_fee_apply_failed", "order_id", orderID, "error", err)
			return false, ErrServiceFeeApplyFailed
		}
		mergeOrder(order, result, summary)
	}

	snapshot := newSnapshotOrder(order)

	created, err := s.snapshotRepo.CreateOnce(snapshot)
	if err != nil {
		logger.Ctx(ctx).Errorw("snapshot_write_failed", "order_id", orderID, "error", err)
		return false, ErrSnapshotWriteFailed
	}
	if created {
		logger.Ctx(ctx).Infow("snapshot_written",
			"order_id", orderID,
			"snapshot_id", snapshot.ID,
			"service_fee_total", snapshot.ServiceFeeTotal.String(),
		)
	}
	return created, nil
}

// GetByOrderID 获取订单快照
func (s *SnapshotService) GetByOrderID(orderID string) (*models.SnapshotOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrSnapshotNotFound
	}
	snapshot, err := s.snapshotRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}
	return snapshot, nil
}

// List 分页查询快照
func (s *SnapshotService) List(filter repository.SnapshotListFilter) ([]models.SnapshotOrder, int64, error) {
	return s.snapshotRepo.List(filter)
}

// newSnapshotOrder 由订单（已合并服务费）构造快照
func newSnapshotOrder(order *models.Order) *models.SnapshotOrder {
	snapshot := &models.SnapshotOrder{
		OrderID:              order.ID,
		DisplayID:            order.DisplayID,
		Email:                order.Email,
		Currency:             order.Currency,
		RegionID:             order.RegionID,
		CustomerID:           order.CustomerID,
		SalesChannelID:       order.SalesChannelID,
		Status:               order.Status,
		Subtotal:             order.Subtotal,
		Total:                order.Total,
		ItemTotal:            order.ItemTotal,
		ItemSubtotal:         order.ItemSubtotal,
		OriginalTotal:        order.OriginalTotal,
		OriginalItemTotal:    order.OriginalItemTotal,
		OriginalItemSubtotal: order.OriginalItemSubtotal,
		ShippingTotal:        order.ShippingTotal,
		DiscountTotal:        order.DiscountTotal,
		TaxTotal:             order.TaxTotal,
		ServiceFeeTotal:      order.ServiceFeeTotal,
		ShippingAddress:      order.ShippingAddress,
		BillingAddress:       order.BillingAddress,
		Metadata:             order.Metadata,
		OrderCreatedAt:       order.CreatedAt,
	}
	snapshot.Items = make([]models.SnapshotLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		snapshot.Items = append(snapshot.Items, models.SnapshotLineItem{
			LineItemID:    item.ID,
			Title:         item.Title,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Subtotal:      item.Subtotal,
			Total:         item.Total,
			TaxTotal:      item.TaxTotal,
			DiscountTotal: item.DiscountTotal,
			ServiceFee:    item.ServiceFeeAmount,
			ServiceFeeID:  item.ServiceFeeID,
			VariantID:     item.VariantID,
			ProductID:     item.ProductID,
			Metadata:      item.Metadata,
		})
	}
	return snapshot
}
