package repository

import (
	"context"
	"errors"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/servicefee"

	"gorm.io/gorm"
)

// ServiceFeeRepository 服务费数据访问接口
type ServiceFeeRepository interface {
	Create(fee *models.ServiceFee) error
	Update(fee *models.ServiceFee) error
	Delete(id string) error
	GetByID(id string) (*models.ServiceFee, error)
	List(filter ServiceFeeListFilter) ([]models.ServiceFee, int64, error)
	ListServiceFees(ctx context.Context) ([]servicefee.Fee, error)
	WithTx(tx *gorm.DB) *GormServiceFeeRepository
}

// GormServiceFeeRepository GORM 实现
type GormServiceFeeRepository struct {
	db *gorm.DB
}

// NewServiceFeeRepository 创建服务费仓库
func NewServiceFeeRepository(db *gorm.DB) *GormServiceFeeRepository {
	return &GormServiceFeeRepository{db: db}
}

// WithTx 绑定事务
func (r *GormServiceFeeRepository) WithTx(tx *gorm.DB) *GormServiceFeeRepository {
	if tx == nil {
		return r
	}
	return &GormServiceFeeRepository{db: tx}
}

// Create 创建服务费
func (r *GormServiceFeeRepository) Create(fee *models.ServiceFee) error {
	return r.db.Create(fee).Error
}

// Update 更新服务费
func (r *GormServiceFeeRepository) Update(fee *models.ServiceFee) error {
	return r.db.Save(fee).Error
}

// Delete 删除服务费
func (r *GormServiceFeeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.ServiceFee{}).Error
}

// GetByID 根据 ID 获取服务费
func (r *GormServiceFeeRepository) GetByID(id string) (*models.ServiceFee, error) {
	var fee models.ServiceFee
	if err := r.db.Where("id = ?", id).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}

// List 分页查询服务费
func (r *GormServiceFeeRepository) List(filter ServiceFeeListFilter) ([]models.ServiceFee, int64, error) {
	query := r.db.Model(&models.ServiceFee{})
	if filter.ChargingLevel != "" {
		query = query.Where("charging_level = ?", filter.ChargingLevel)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = applyLikeSearch(query, filter.Search, "display_name", "fee_name")

	return findPage[models.ServiceFee](query, filter.Page, filter.PageSize, "created_at desc", nil)
}

// ListServiceFees 全量读取服务费规则并转换为引擎视图，过滤在内存中完成
func (r *GormServiceFeeRepository) ListServiceFees(ctx context.Context) ([]servicefee.Fee, error) {
	var rows []models.ServiceFee
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	fees := make([]servicefee.Fee, 0, len(rows))
	for _, row := range rows {
		fees = append(fees, ToEngineFee(row))
	}
	return fees, nil
}

// ToEngineFee 按收费层级解码适用规则
func ToEngineFee(row models.ServiceFee) servicefee.Fee {
	fee := servicefee.Fee{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		Name:        row.FeeName,
		Level:       servicefee.ChargingLevel(row.ChargingLevel),
		Rate:        row.Rate,
		ValidFrom:   row.ValidFrom,
		ValidTo:     row.ValidTo,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
	cfg := row.EligibilityConfig
	switch row.ChargingLevel {
	case constants.ServiceFeeLevelItem:
		rule := &servicefee.ItemRule{}
		if cfg != nil {
			if cfg.Include != nil {
				rule.IncludeCategories = cfg.Include.Categories
				rule.IncludeCollections = cfg.Include.Collection
			}
			if cfg.Exinclude != nil {
				rule.ExcludeCategories = cfg.Exinclude.Categories
				rule.ExcludeCollections = cfg.Exinclude.Collection
			}
		}
		fee.ItemRule = rule
	case constants.ServiceFeeLevelShop:
		rule := &servicefee.ShopRule{}
		if cfg != nil {
			if cfg.Vendors != nil {
				rule.AllVendors = cfg.Vendors.All
				rule.Vendors = cfg.Vendors.IDs
			}
			rule.VendorGroups = cfg.VendorGroup
		}
		fee.ShopRule = rule
	}
	return fee
}
