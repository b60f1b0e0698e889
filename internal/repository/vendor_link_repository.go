package repository

import (
	"context"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/servicefee"

	"gorm.io/gorm"
)

// ModuleVendorProductLinkReader 通过 vendor_products 直连表读取商家-商品关联
type ModuleVendorProductLinkReader struct {
	db *gorm.DB
}

// NewModuleVendorProductLinkReader 创建直连表读取器
func NewModuleVendorProductLinkReader(db *gorm.DB) *ModuleVendorProductLinkReader {
	return &ModuleVendorProductLinkReader{db: db}
}

// ListVendorProductLinks 按商品ID批量读取
func (r *ModuleVendorProductLinkReader) ListVendorProductLinks(ctx context.Context, productIDs []string) ([]servicefee.VendorProductLink, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []models.VendorProduct
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("created_at asc, vendor_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	links := make([]servicefee.VendorProductLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, servicefee.VendorProductLink{VendorID: row.VendorID, ProductID: row.ProductID})
	}
	return links, nil
}

// RegistryVendorProductLinkReader 通过通用关联登记表读取商家-商品关联
type RegistryVendorProductLinkReader struct {
	db *gorm.DB
}

// NewRegistryVendorProductLinkReader 创建登记表读取器
func NewRegistryVendorProductLinkReader(db *gorm.DB) *RegistryVendorProductLinkReader {
	return &RegistryVendorProductLinkReader{db: db}
}

// ListVendorProductLinks 按商品ID批量读取 vendor -> product 登记
func (r *RegistryVendorProductLinkReader) ListVendorProductLinks(ctx context.Context, productIDs []string) ([]servicefee.VendorProductLink, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []models.LinkRegistry
	if err := r.db.WithContext(ctx).
		Where("from_entity = ? AND to_entity = ? AND to_id IN ?", constants.LinkEntityVendor, constants.LinkEntityProduct, productIDs).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	links := make([]servicefee.VendorProductLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, servicefee.VendorProductLink{VendorID: row.FromID, ProductID: row.ToID})
	}
	return links, nil
}

// NewVendorProductLinkReader 按配置选择关联读取方式，未知取值按 module 处理
func NewVendorProductLinkReader(db *gorm.DB, mode string) servicefee.VendorProductLinkReader {
	if mode == constants.VendorLinkModeRegistry {
		return NewRegistryVendorProductLinkReader(db)
	}
	return NewModuleVendorProductLinkReader(db)
}

// GormVendorGroupLinkRepository 商家分组成员读取
type GormVendorGroupLinkRepository struct {
	db *gorm.DB
}

// NewVendorGroupLinkRepository 创建分组成员仓库
func NewVendorGroupLinkRepository(db *gorm.DB) *GormVendorGroupLinkRepository {
	return &GormVendorGroupLinkRepository{db: db}
}

// ListVendorGroupLinks 按商家ID批量读取分组成员关系
func (r *GormVendorGroupLinkRepository) ListVendorGroupLinks(ctx context.Context, vendorIDs []string) ([]servicefee.VendorGroupLink, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	var rows []models.VendorGroupVendor
	if err := r.db.WithContext(ctx).
		Where("vendor_id IN ?", vendorIDs).
		Order("vendor_group_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	links := make([]servicefee.VendorGroupLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, servicefee.VendorGroupLink{VendorGroupID: row.VendorGroupID, VendorID: row.VendorID})
	}
	return links, nil
}
