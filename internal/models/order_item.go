package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`           // 主键
	OrderID   string    `gorm:"type:varchar(64);index;not null" json:"order_id"` // 订单ID
	ProductID string    `gorm:"type:varchar(64);index" json:"product_id"`        // 商品ID
	VariantID string    `gorm:"type:varchar(64);index" json:"variant_id"`        // 规格ID
	Title     string    `gorm:"not null" json:"title"`                           // 商品标题快照
	Quantity  int       `gorm:"not null" json:"quantity"`                        // 数量
	UnitPrice NullMoney `gorm:"type:decimal(20,2)" json:"unit_price"`            // 单价

	LineAmounts `gorm:"embedded"`

	Metadata  JSON           `gorm:"type:json" json:"metadata,omitempty"` // 元数据
	CreatedAt time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`             // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间

	ServiceFeeAmount Money  `gorm:"-" json:"service_fee_amount"`       // 本行服务费
	ServiceFeeID     string `gorm:"-" json:"service_fee_id,omitempty"` // 适用服务费ID
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate 生成ID
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID, constants.IDPrefixOrderItem)
	return nil
}
