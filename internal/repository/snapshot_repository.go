package repository

import (
	"errors"

	"github.com/marketfee-next/internal/models"

	"gorm.io/gorm"
)

// SnapshotRepository 订单快照数据访问接口（只追加）
type SnapshotRepository interface {
	CreateOnce(snapshot *models.SnapshotOrder) (bool, error)
	GetByOrderID(orderID string) (*models.SnapshotOrder, error)
	List(filter SnapshotListFilter) ([]models.SnapshotOrder, int64, error)
	WithTx(tx *gorm.DB) *GormSnapshotRepository
}

// GormSnapshotRepository GORM 实现
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSnapshotRepository) WithTx(tx *gorm.DB) *GormSnapshotRepository {
	if tx == nil {
		return r
	}
	return &GormSnapshotRepository{db: tx}
}

// CreateOnce 写入订单快照；同一订单已存在快照时不做任何修改并返回 false
func (r *GormSnapshotRepository) CreateOnce(snapshot *models.SnapshotOrder) (bool, error) {
	if snapshot == nil {
		return false, nil
	}
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SnapshotOrder{}).Where("order_id = ?", snapshot.OrderID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(snapshot).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// GetByOrderID 根据订单 ID 获取快照
func (r *GormSnapshotRepository) GetByOrderID(orderID string) (*models.SnapshotOrder, error) {
	var snapshot models.SnapshotOrder
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc, id asc") }).
		Where("order_id = ?", orderID).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// List 分页查询快照
func (r *GormSnapshotRepository) List(filter SnapshotListFilter) ([]models.SnapshotOrder, int64, error) {
	query := r.db.Model(&models.SnapshotOrder{})
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	query = applyLikeSearch(query, filter.Email, "email")
	query = applyCreatedRange(query, filter.CreatedFrom, filter.CreatedTo)
	return findPage[models.SnapshotOrder](query, filter.Page, filter.PageSize, "created_at desc", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Items")
	})
}
