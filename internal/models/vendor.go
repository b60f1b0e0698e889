package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// Vendor 商家表
type Vendor struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"` // 主键
	Handle    string         `gorm:"uniqueIndex;not null" json:"handle"`    // 唯一标识
	Name      string         `gorm:"not null" json:"name"`                  // 名称
	Email     string         `gorm:"index" json:"email"`                    // 联系邮箱
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Vendor) TableName() string {
	return "vendors"
}

// BeforeCreate 生成ID
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID, constants.IDPrefixVendor)
	return nil
}

// VendorGroup 商家分组表
type VendorGroup struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"` // 主键
	Name      string         `gorm:"not null" json:"name"`                  // 名称
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (VendorGroup) TableName() string {
	return "vendor_groups"
}

// BeforeCreate 生成ID
func (g *VendorGroup) BeforeCreate(tx *gorm.DB) error {
	ensureID(&g.ID, constants.IDPrefixVendorGroup)
	return nil
}

// VendorProduct 商家-商品直连关联表（module 模式）
type VendorProduct struct {
	VendorID  string    `gorm:"primaryKey;type:varchar(64)" json:"vendor_id"`        // 商家ID
	ProductID string    `gorm:"primaryKey;type:varchar(64);index" json:"product_id"` // 商品ID
	CreatedAt time.Time `json:"created_at"`                                          // 创建时间
}

// TableName 指定表名
func (VendorProduct) TableName() string {
	return "vendor_products"
}

// VendorGroupVendor 商家分组成员表
type VendorGroupVendor struct {
	VendorGroupID string    `gorm:"primaryKey;type:varchar(64)" json:"vendor_group_id"` // 分组ID
	VendorID      string    `gorm:"primaryKey;type:varchar(64);index" json:"vendor_id"` // 商家ID
	CreatedAt     time.Time `json:"created_at"`                                         // 创建时间
}

// TableName 指定表名
func (VendorGroupVendor) TableName() string {
	return "vendor_group_vendors"
}

// LinkRegistry 通用实体关联登记表（registry 模式）
type LinkRegistry struct {
	ID         string         `gorm:"primaryKey;type:varchar(64)" json:"id"`                            // 主键
	FromEntity string         `gorm:"type:varchar(40);not null;index:idx_link_from" json:"from_entity"` // 源实体类型
	FromID     string         `gorm:"type:varchar(64);not null;index:idx_link_from" json:"from_id"`     // 源实体ID
	ToEntity   string         `gorm:"type:varchar(40);not null;index:idx_link_to" json:"to_entity"`     // 目标实体类型
	ToID       string         `gorm:"type:varchar(64);not null;index:idx_link_to" json:"to_id"`         // 目标实体ID
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                          // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                   // 软删除时间
}

// TableName 指定表名
func (LinkRegistry) TableName() string {
	return "link_registry"
}

// BeforeCreate 生成ID
func (l *LinkRegistry) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID, constants.IDPrefixLink)
	return nil
}
