package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// SnapshotOrder 订单完成时的只追加快照
type SnapshotOrder struct {
	ID                   string    `gorm:"primaryKey;type:varchar(64)" json:"id"`                          // 主键
	OrderID              string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_id"`          // 订单ID
	DisplayID            int       `gorm:"index" json:"display_id"`                                        // 展示编号
	Email                string    `gorm:"type:varchar(255)" json:"email"`                                 // 邮箱
	Currency             string    `gorm:"type:varchar(10)" json:"currency_code"`                          // 币种
	RegionID             string    `gorm:"type:varchar(64)" json:"region_id"`                              // 区域ID
	CustomerID           string    `gorm:"type:varchar(64);index" json:"customer_id"`                      // 客户ID
	SalesChannelID       string    `gorm:"type:varchar(64)" json:"sales_channel_id"`                       // 销售渠道ID
	Status               string    `gorm:"type:varchar(32)" json:"status"`                                 // 快照时订单状态
	Subtotal             NullMoney `gorm:"type:decimal(20,2)" json:"subtotal"`                             // 小计
	Total                NullMoney `gorm:"type:decimal(20,2)" json:"total"`                                // 合计
	ItemTotal            NullMoney `gorm:"type:decimal(20,2)" json:"item_total"`                           // 商品合计
	ItemSubtotal         NullMoney `gorm:"type:decimal(20,2)" json:"item_subtotal"`                        // 商品小计
	OriginalTotal        NullMoney `gorm:"type:decimal(20,2)" json:"original_total"`                       // 原始合计
	OriginalItemTotal    NullMoney `gorm:"type:decimal(20,2)" json:"original_item_total"`                  // 原始商品合计
	OriginalItemSubtotal NullMoney `gorm:"type:decimal(20,2)" json:"original_item_subtotal"`               // 原始商品小计
	ShippingTotal        NullMoney `gorm:"type:decimal(20,2)" json:"shipping_total"`                       // 运费合计
	DiscountTotal        NullMoney `gorm:"type:decimal(20,2)" json:"discount_total"`                       // 优惠合计
	TaxTotal             NullMoney `gorm:"type:decimal(20,2)" json:"tax_total"`                            // 税费合计
	ServiceFeeTotal      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"service_fee_total"` // 服务费合计
	ShippingAddress      JSON      `gorm:"type:json" json:"shipping_address,omitempty"`                    // 收货地址
	BillingAddress       JSON      `gorm:"type:json" json:"billing_address,omitempty"`                     // 账单地址
	Metadata             JSON      `gorm:"type:json" json:"metadata,omitempty"`                            // 元数据
	OrderCreatedAt       time.Time `gorm:"index" json:"order_created_at"`                                  // 订单创建时间
	CreatedAt            time.Time `gorm:"index" json:"created_at"`                                        // 快照时间

	Items []SnapshotLineItem `gorm:"foreignKey:SnapshotOrderID" json:"items"` // 快照行项目
}

// TableName 指定表名
func (SnapshotOrder) TableName() string {
	return "snapshot_orders"
}

// BeforeCreate 生成ID
func (s *SnapshotOrder) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID, constants.IDPrefixSnapshot)
	return nil
}

// SnapshotLineItem 快照行项目
type SnapshotLineItem struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`                    // 主键
	SnapshotOrderID string    `gorm:"type:varchar(64);index;not null" json:"snapshot_order_id"` // 快照ID
	LineItemID      string    `gorm:"type:varchar(64);index" json:"line_item_id"`               // 原订单项ID
	Title           string    `json:"title"`                                                    // 标题
	Quantity        int       `json:"quantity"`                                                 // 数量
	UnitPrice       NullMoney `gorm:"type:decimal(20,2)" json:"unit_price"`                     // 含服务费单价
	Subtotal        NullMoney `gorm:"type:decimal(20,2)" json:"subtotal"`                       // 小计
	Total           NullMoney `gorm:"type:decimal(20,2)" json:"total"`                          // 合计
	TaxTotal        NullMoney `gorm:"type:decimal(20,2)" json:"tax_total"`                      // 税费合计
	DiscountTotal   NullMoney `gorm:"type:decimal(20,2)" json:"discount_total"`                 // 优惠合计
	ServiceFee      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"service_fee"` // 本行服务费
	ServiceFeeID    string    `gorm:"type:varchar(64)" json:"service_fee_id"`                   // 适用服务费ID
	VariantID       string    `gorm:"type:varchar(64)" json:"variant_id"`                       // 规格ID
	ProductID       string    `gorm:"type:varchar(64)" json:"product_id"`                       // 商品ID
	Metadata        JSON      `gorm:"type:json" json:"metadata,omitempty"`                      // 元数据
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
}

// TableName 指定表名
func (SnapshotLineItem) TableName() string {
	return "snapshot_line_items"
}

// BeforeCreate 生成ID
func (s *SnapshotLineItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID, constants.IDPrefixSnapshotItem)
	return nil
}
