package service

import (
	"context"
	"strings"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/queue"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/servicefee"

	"golang.org/x/sync/errgroup"
)

const defaultOrderFanout = 8

// OrderServiceOptions 订单服务可选配置
type OrderServiceOptions struct {
	Fanout        int
	SnapshotAsync bool
	Clock         func() time.Time
}

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	engine      *servicefee.Engine
	snapshots   *SnapshotService
	queueClient *queue.Client
	fanout      int
	async       bool
	clock       func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, engine *servicefee.Engine, snapshots *SnapshotService, queueClient *queue.Client, opts OrderServiceOptions) *OrderService {
	fanout := opts.Fanout
	if fanout <= 0 {
		fanout = defaultOrderFanout
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &OrderService{
		orderRepo:   orderRepo,
		engine:      engine,
		snapshots:   snapshots,
		queueClient: queueClient,
		fanout:      fanout,
		async:       opts.SnapshotAsync,
		clock:       clock,
	}
}

// ListByCustomer 获取客户订单列表（含服务费）
func (s *OrderService) ListByCustomer(ctx context.Context, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.CustomerID = strings.TrimSpace(filter.CustomerID)
	if filter.CustomerID == "" {
		return nil, 0, ErrCustomerRequired
	}
	orders, total, err := s.orderRepo.ListByCustomer(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	if err := s.applyFeesToOrders(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAdmin 管理端订单列表（含服务费）
func (s *OrderService) ListAdmin(ctx context.Context, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListAdmin(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	if err := s.applyFeesToOrders(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByCustomer 获取客户订单详情，服务费明细失败时仅记录日志
func (s *OrderService) GetByCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	order, err := s.orderRepo.GetByIDAndCustomer(strings.TrimSpace(orderID), customerID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	s.enrichOrderDetail(ctx, order)
	return order, nil
}

// GetAdmin 管理端订单详情
func (s *OrderService) GetAdmin(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(strings.TrimSpace(orderID))
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	s.enrichOrderDetail(ctx, order)
	return order, nil
}

// CompleteOrder 完成订单并写入快照；快照失败不影响完成结果
func (s *OrderService) CompleteOrder(ctx context.Context, orderID string) (*models.Order, error) {
	orderID = strings.TrimSpace(orderID)
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	switch order.Status {
	case constants.OrderStatusCompleted:
	case constants.OrderStatusCanceled:
		return nil, ErrOrderStatusInvalid
	default:
		now := s.clock()
		if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCompleted, map[string]interface{}{
			"completed_at": now,
		}); err != nil {
			return nil, ErrOrderUpdateFailed
		}
		order.Status = constants.OrderStatusCompleted
		order.CompletedAt = &now
	}

	s.snapshotAfterCompletion(ctx, order.ID)
	s.enrichOrderDetail(ctx, order)
	return order, nil
}

// snapshotAfterCompletion 异步模式下入队，否则同步写入；失败只记录日志
func (s *OrderService) snapshotAfterCompletion(ctx context.Context, orderID string) {
	if s.async && s.queueClient != nil && s.queueClient.Enabled() {
		queued, err := s.queueClient.EnqueueOrderSnapshot(ctx, orderID)
		if err == nil {
			logger.Ctx(ctx).Debugw("order_snapshot_enqueued", "order_id", orderID, "queued", queued)
			return
		}
		logger.Ctx(ctx).Warnw("order_snapshot_enqueue_failed", "order_id", orderID, "error", err)
	}
	if s.snapshots == nil {
		return
	}
	if _, err := s.snapshots.SnapshotOrder(ctx, orderID); err != nil {
		logger.Ctx(ctx).Warnw("order_snapshot_failed", "order_id", orderID, "error", err)
	}
}

// applyFeesToOrders 按订单并发计算服务费，每个订单独立计算
func (s *OrderService) applyFeesToOrders(ctx context.Context, orders []models.Order) error {
	if s.engine == nil || len(orders) == 0 {
		return nil
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.fanout)
	for i := range orders {
		order := &orders[i]
		group.Go(func() error {
			result, summary, err := s.engine.ApplyToContainer(groupCtx, orderContainer(order))
			if err != nil {
				logger.Ctx(ctx).Errorw("order_service_fee_apply_failed", "order_id", order.ID, "error", err)
				return err
			}
			mergeOrder(order, result, summary)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return ErrServiceFeeApplyFailed
	}
	return nil
}

// enrichOrderDetail 订单详情附加服务费总额与规则明细，失败时保留原订单数据
func (s *OrderService) enrichOrderDetail(ctx context.Context, order *models.Order) {
	if s.engine == nil || order == nil {
		return
	}
	result, summary, err := s.engine.ApplyToContainer(ctx, orderContainer(order))
	if err != nil {
		logger.Ctx(ctx).Warnw("order_detail_service_fee_failed", "order_id", order.ID, "error", err)
		return
	}
	mergeOrder(order, result, summary)
	order.ServiceFees = appliedServiceFees(result.Items, summary.AppliedFees)
}

// appliedServiceFees 按实际计费的规则聚合商品，保持商品出现顺序
func appliedServiceFees(items []servicefee.LineItem, fees map[string]servicefee.Fee) []models.AppliedServiceFee {
	index := make(map[string]int)
	seen := make(map[string]struct{}, len(items))
	var out []models.AppliedServiceFee
	for _, item := range items {
		if item.ProductID == "" || item.FeeID == "" {
			continue
		}
		fee, ok := fees[item.FeeID]
		if !ok {
			continue
		}
		if _, dup := seen[item.ProductID]; dup {
			continue
		}
		seen[item.ProductID] = struct{}{}
		if pos, ok := index[fee.ID]; ok {
			out[pos].ProductIDs = append(out[pos].ProductIDs, item.ProductID)
			continue
		}
		index[fee.ID] = len(out)
		out = append(out, models.AppliedServiceFee{
			ID:            fee.ID,
			DisplayName:   fee.DisplayName,
			ChargingLevel: string(item.FeeLevel),
			Rate:          fee.Rate,
			ProductIDs:    []string{item.ProductID},
		})
	}
	return out
}
