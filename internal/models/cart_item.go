package models

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"gorm.io/gorm"
)

// Cart 购物车
type Cart struct {
	ID         string `gorm:"primaryKey;type:varchar(64)" json:"id"`          // 主键
	CustomerID string `gorm:"type:varchar(64);index" json:"customer_id"`      // 客户ID
	Email      string `gorm:"type:varchar(255)" json:"email"`                 // 邮箱
	Currency   string `gorm:"type:varchar(10);not null" json:"currency_code"` // 币种
	RegionID   string `gorm:"type:varchar(64)" json:"region_id"`              // 区域ID

	ParentAmounts `gorm:"embedded"`

	CompletedAt *time.Time     `gorm:"index" json:"completed_at"` // 完成时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`            // 软删除时间

	ServiceFeeTotal Money            `gorm:"-" json:"service_fee_total"`                // 服务费合计
	Items           []CartItem       `gorm:"foreignKey:CartID" json:"items"`            // 购物车项
	ShippingMethods []ShippingMethod `gorm:"foreignKey:CartID" json:"shipping_methods"` // 配送方式
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// BeforeCreate 生成ID
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID, constants.IDPrefixCart)
	return nil
}

// CartItem 购物车项
type CartItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`          // 主键
	CartID    string    `gorm:"type:varchar(64);not null;index" json:"cart_id"` // 购物车ID
	ProductID string    `gorm:"type:varchar(64);index" json:"product_id"`       // 商品ID（可为空，仅有规格时按规格解析）
	VariantID string    `gorm:"type:varchar(64);index" json:"variant_id"`       // 规格ID
	Title     string    `gorm:"not null" json:"title"`                          // 标题
	Quantity  int       `gorm:"not null" json:"quantity"`                       // 数量
	UnitPrice NullMoney `gorm:"type:decimal(20,2)" json:"unit_price"`           // 单价

	LineAmounts `gorm:"embedded"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"` // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"` // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`          // 软删除时间

	ServiceFeeAmount Money    `gorm:"-" json:"service_fee_amount"`                   // 本行服务费
	ServiceFeeID     string   `gorm:"-" json:"service_fee_id,omitempty"`             // 适用服务费ID
	Product          *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// BeforeCreate 生成ID
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID, constants.IDPrefixCartItem)
	return nil
}
