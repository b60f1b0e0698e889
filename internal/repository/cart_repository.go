package repository

import (
	"errors"

	"github.com/marketfee-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	GetActiveByCustomer(customerID string) (*models.Cart, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

func (r *GormCartRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Items.Product").
		Preload("Items.Product.Categories").
		Preload("ShippingMethods")
}

// Create 创建购物车及其项目
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByID 根据 ID 获取购物车
func (r *GormCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.withRelations(r.db).Where("id = ?", id).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetActiveByCustomer 获取客户最近一个未完成的购物车
func (r *GormCartRepository) GetActiveByCustomer(customerID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.withRelations(r.db).
		Where("customer_id = ? AND completed_at IS NULL", customerID).
		Order("updated_at desc").
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}
