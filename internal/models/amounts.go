package models

// LineAmounts 行项目派生金额，空值表示宿主未跟踪该字段
type LineAmounts struct {
	Subtotal             NullMoney `gorm:"type:decimal(20,2)" json:"subtotal"`               // 小计
	Total                NullMoney `gorm:"type:decimal(20,2)" json:"total"`                  // 合计
	OriginalTotal        NullMoney `gorm:"type:decimal(20,2)" json:"original_total"`         // 原始合计
	OriginalSubtotal     NullMoney `gorm:"type:decimal(20,2)" json:"original_subtotal"`      // 原始小计
	OriginalItemTotal    NullMoney `gorm:"type:decimal(20,2)" json:"original_item_total"`    // 原始商品合计
	OriginalItemSubtotal NullMoney `gorm:"type:decimal(20,2)" json:"original_item_subtotal"` // 原始商品小计
	DiscountTotal        NullMoney `gorm:"type:decimal(20,2)" json:"discount_total"`         // 优惠合计
	TaxTotal             NullMoney `gorm:"type:decimal(20,2)" json:"tax_total"`              // 税费合计
}

// ParentAmounts 购物车/订单派生金额
type ParentAmounts struct {
	Subtotal             NullMoney `gorm:"type:decimal(20,2)" json:"subtotal"`               // 小计
	Total                NullMoney `gorm:"type:decimal(20,2)" json:"total"`                  // 合计
	ItemTotal            NullMoney `gorm:"type:decimal(20,2)" json:"item_total"`             // 商品合计
	ItemSubtotal         NullMoney `gorm:"type:decimal(20,2)" json:"item_subtotal"`          // 商品小计
	OriginalTotal        NullMoney `gorm:"type:decimal(20,2)" json:"original_total"`         // 原始合计
	OriginalItemTotal    NullMoney `gorm:"type:decimal(20,2)" json:"original_item_total"`    // 原始商品合计
	OriginalItemSubtotal NullMoney `gorm:"type:decimal(20,2)" json:"original_item_subtotal"` // 原始商品小计
	ShippingTotal        NullMoney `gorm:"type:decimal(20,2)" json:"shipping_total"`         // 运费合计
	ShippingSubtotal     NullMoney `gorm:"type:decimal(20,2)" json:"shipping_subtotal"`      // 运费小计
	DiscountTotal        NullMoney `gorm:"type:decimal(20,2)" json:"discount_total"`         // 优惠合计
	TaxTotal             NullMoney `gorm:"type:decimal(20,2)" json:"tax_total"`              // 税费合计
}
