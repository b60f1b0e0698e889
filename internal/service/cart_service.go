package service

import (
	"context"
	"strings"

	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/servicefee"
)

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
	engine   *servicefee.Engine
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, engine *servicefee.Engine) *CartService {
	return &CartService{cartRepo: cartRepo, engine: engine}
}

// GetByCustomer 获取客户当前购物车（含服务费）
func (s *CartService) GetByCustomer(ctx context.Context, customerID string) (*models.Cart, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	cart, err := s.cartRepo.GetActiveByCustomer(customerID)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if err := s.applyFees(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetByID 按 ID 获取购物车（含服务费）
func (s *CartService) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrCartNotFound
	}
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if err := s.applyFees(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) applyFees(ctx context.Context, cart *models.Cart) error {
	if s.engine == nil {
		return nil
	}
	result, summary, err := s.engine.ApplyToContainer(ctx, cartContainer(cart))
	if err != nil {
		logger.Ctx(ctx).Errorw("cart_service_fee_apply_failed",
			"cart_id", cart.ID,
			"error", err,
		)
		return ErrServiceFeeApplyFailed
	}
	mergeCart(cart, result, summary)
	return nil
}
