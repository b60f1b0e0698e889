package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID           string         `gorm:"primaryKey;type:varchar(64)" json:"id"` // 主键
	Handle       string         `gorm:"uniqueIndex;not null" json:"handle"`    // 唯一标识
	Title        string         `gorm:"not null" json:"title"`                 // 标题
	Description  string         `gorm:"type:text" json:"description"`          // 描述
	CollectionID *string        `gorm:"index" json:"collection_id"`            // 合集ID
	Status       string         `gorm:"type:varchar(20);index" json:"status"`  // 状态
	Metadata     JSON           `gorm:"type:json" json:"metadata,omitempty"`   // 元数据
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                            // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间

	// 关联
	Collection *Collection      `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`   // 合集
	Categories []Category       `gorm:"many2many:product_category_products" json:"categories"` // 分类
	Variants   []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`        // 规格
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeCreate 生成ID
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID, constants.IDPrefixProduct)
	return nil
}

// CategoryIDs 返回已加载的分类ID
func (p *Product) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, category := range p.Categories {
		ids = append(ids, category.ID)
	}
	return ids
}

// ProductVariant 商品规格表
type ProductVariant struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`  // 主键
	ProductID   string         `gorm:"index;not null" json:"product_id"`       // 商品ID
	Title       string         `gorm:"not null" json:"title"`                  // 规格名称
	SKU         string         `gorm:"index" json:"sku"`                       // SKU 编码
	PriceAmount NullMoney      `gorm:"type:decimal(20,2)" json:"price_amount"` // 计算价（不含服务费）
	SortOrder   int            `gorm:"default:0" json:"sort_order"`            // 排序
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                             // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间

	CalculatedPrice *CalculatedPrice `gorm:"-" json:"calculated_price,omitempty"` // 展示价
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}

// BeforeCreate 生成ID
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID, constants.IDPrefixVariant)
	return nil
}
