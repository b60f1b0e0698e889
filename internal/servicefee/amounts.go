package servicefee

import "github.com/shopspring/decimal"

// 行项目派生金额字段
const (
	FieldSubtotal             = "subtotal"
	FieldTotal                = "total"
	FieldOriginalTotal        = "original_total"
	FieldOriginalSubtotal     = "original_subtotal"
	FieldOriginalItemTotal    = "original_item_total"
	FieldOriginalItemSubtotal = "original_item_subtotal"
	FieldDiscountTotal        = "discount_total"
)

// 购物车/订单派生金额字段
const (
	FieldItemTotal        = "item_total"
	FieldItemSubtotal     = "item_subtotal"
	FieldShippingTotal    = "shipping_total"
	FieldShippingSubtotal = "shipping_subtotal"
)

// ItemSeededFields 行项目上“有则累加，无则初始化”的字段
var ItemSeededFields = []string{
	FieldSubtotal,
	FieldTotal,
	FieldOriginalTotal,
	FieldOriginalSubtotal,
	FieldOriginalItemTotal,
	FieldOriginalItemSubtotal,
}

// ParentFeeFields 父级对象上仅在已存在时累加服务费的字段
var ParentFeeFields = []string{
	FieldSubtotal,
	FieldItemTotal,
	FieldItemSubtotal,
	FieldOriginalTotal,
	FieldOriginalItemTotal,
	FieldOriginalItemSubtotal,
}

// DefaultAdjustOnlyItemFields 行项目上仅累加、不初始化的字段
var DefaultAdjustOnlyItemFields = []string{FieldDiscountTotal}

// Amounts 宿主对象携带的金额字段，key 存在即表示该对象类型跟踪此字段
type Amounts map[string]decimal.Decimal

// Get 读取字段
func (a Amounts) Get(field string) (decimal.Decimal, bool) {
	if a == nil {
		return decimal.Zero, false
	}
	value, ok := a[field]
	return value, ok
}

// Has 字段是否存在
func (a Amounts) Has(field string) bool {
	_, ok := a.Get(field)
	return ok
}

// AddIfPresent 字段存在时累加，返回是否修改
func (a Amounts) AddIfPresent(field string, delta decimal.Decimal) bool {
	value, ok := a.Get(field)
	if !ok {
		return false
	}
	a[field] = value.Add(delta)
	return true
}

// AddOrSeed 字段存在时累加 delta，否则初始化为 seed
func (a Amounts) AddOrSeed(field string, delta, seed decimal.Decimal) {
	if a.AddIfPresent(field, delta) {
		return
	}
	a[field] = seed
}

// Clone 复制字段表，nil 返回空表
func (a Amounts) Clone() Amounts {
	out := make(Amounts, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
