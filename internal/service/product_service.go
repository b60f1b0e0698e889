package service

import (
	"context"
	"strings"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/servicefee"
)

// ProductService 商品业务服务
type ProductService struct {
	repo   repository.ProductRepository
	engine *servicefee.Engine
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, engine *servicefee.Engine) *ProductService {
	return &ProductService{repo: repo, engine: engine}
}

// ListPublicInput 公开商品列表查询
type ListPublicInput struct {
	CategoryID   string
	CollectionID string
	Search       string
	Page         int
	PageSize     int
}

// ListPublic 获取公开商品列表，规格价格附带服务费
func (s *ProductService) ListPublic(ctx context.Context, input ListPublicInput) ([]models.Product, int64, error) {
	products, total, err := s.repo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategoryID:   strings.TrimSpace(input.CategoryID),
		CollectionID: strings.TrimSpace(input.CollectionID),
		Search:       input.Search,
		OnlyActive:   true,
	})
	if err != nil {
		return nil, 0, ErrProductFetchFailed
	}
	if err := s.annotate(ctx, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetPublicByID 获取公开商品详情
func (s *ProductService) GetPublicByID(ctx context.Context, id string) (*models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil || product.Status != constants.ProductStatusPublished {
		return nil, ErrProductNotFound
	}
	products := []models.Product{*product}
	if err := s.annotate(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// annotate 为规格计算价附加服务费
func (s *ProductService) annotate(ctx context.Context, products []models.Product) error {
	if s.engine == nil || len(products) == 0 {
		return nil
	}
	annotated, err := s.engine.ApplyToProducts(ctx, toEngineProducts(products))
	if err != nil {
		logger.Ctx(ctx).Errorw("product_service_fee_apply_failed",
			"product_count", len(products),
			"error", err,
		)
		return ErrServiceFeeApplyFailed
	}
	mergeProducts(products, annotated)
	return nil
}
