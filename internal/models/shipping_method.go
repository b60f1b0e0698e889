package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// ShippingMethod 购物车/订单上的配送方式
type ShippingMethod struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`               // 主键
	CartID    *string   `gorm:"type:varchar(64);index" json:"cart_id,omitempty"`     // 购物车ID
	OrderID   *string   `gorm:"type:varchar(64);index" json:"order_id,omitempty"`    // 订单ID
	Name      string    `gorm:"not null" json:"name"`                                // 名称
	Amount    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 金额
	CreatedAt time.Time `gorm:"index" json:"created_at"`                             // 创建时间
}

// TableName 指定表名
func (ShippingMethod) TableName() string {
	return "shipping_methods"
}

// BeforeCreate 生成ID
func (m *ShippingMethod) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID, constants.IDPrefixShippingMethod)
	return nil
}
