package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID             string `gorm:"primaryKey;type:varchar(64)" json:"id"`          // 主键
	DisplayID      int    `gorm:"index" json:"display_id"`                        // 展示编号
	CustomerID     string `gorm:"type:varchar(64);index" json:"customer_id"`      // 客户ID
	Email          string `gorm:"type:varchar(255);index" json:"email"`           // 邮箱
	Currency       string `gorm:"type:varchar(10);not null" json:"currency_code"` // 币种
	RegionID       string `gorm:"type:varchar(64)" json:"region_id"`              // 区域ID
	SalesChannelID string `gorm:"type:varchar(64)" json:"sales_channel_id"`       // 销售渠道ID
	Status         string `gorm:"type:varchar(32);index;not null" json:"status"`  // 订单状态

	ParentAmounts `gorm:"embedded"`

	ShippingAddress JSON           `gorm:"type:json" json:"shipping_address,omitempty"` // 收货地址
	BillingAddress  JSON           `gorm:"type:json" json:"billing_address,omitempty"`  // 账单地址
	Metadata        JSON           `gorm:"type:json" json:"metadata,omitempty"`         // 元数据
	CompletedAt     *time.Time     `gorm:"index" json:"completed_at"`                   // 完成时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                     // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间

	ServiceFeeTotal Money               `gorm:"-" json:"service_fee_total"`                           // 服务费合计
	ServiceFees     []AppliedServiceFee `gorm:"-" json:"service_fees,omitempty"`                      // 服务费明细
	Items           []OrderItem         `gorm:"foreignKey:OrderID" json:"items,omitempty"`            // 订单项
	ShippingMethods []ShippingMethod    `gorm:"foreignKey:OrderID" json:"shipping_methods,omitempty"` // 配送方式
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate 生成ID
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID, constants.IDPrefixOrder)
	return nil
}
