package servicefee

import (
	"context"

	"github.com/shopspring/decimal"
)

// LineItem 购物车/订单行项目
type LineItem struct {
	ID         string
	ProductID  string
	VariantID  string
	Quantity   int
	UnitPrice  decimal.NullDecimal
	FinalPrice decimal.NullDecimal
	FeeAmount  decimal.Decimal
	FeeID      string
	FeeLevel   ChargingLevel
	FeeApplied bool
	Amounts    Amounts
	// Product 调用方已关联的商品分类/合集，可为空
	Product *ProductRef
}

// ShippingMethod 配送方式
type ShippingMethod struct {
	ID     string
	Amount decimal.Decimal
}

// Container 购物车或订单
type Container struct {
	ID              string
	Items           []LineItem
	Amounts         Amounts
	ShippingMethods []ShippingMethod
}

// ItemsSummary 行项目计算汇总
type ItemsSummary struct {
	FeeTotal          decimal.Decimal
	ComputedItemTotal decimal.Decimal
	HasMissingPrice   bool
	// AppliedFees 本次实际计费用到的规则，按规则ID索引
	AppliedFees map[string]Fee
}

// ContainerSummary 购物车/订单计算汇总
type ContainerSummary struct {
	ItemsSummary
	ShippingTotal decimal.Decimal
}

// ApplyToItems 为行项目计算服务费并返回新的行项目，不修改入参。
// 已带服务费的行项目（FeeApplied）不会重复计费，只计入汇总。
func (e *Engine) ApplyToItems(ctx context.Context, items []LineItem) ([]LineItem, ItemsSummary, error) {
	summary := ItemsSummary{FeeTotal: decimal.Zero, ComputedItemTotal: decimal.Zero}
	out := cloneItems(items)
	if len(out) == 0 {
		return out, summary, nil
	}
	if err := e.fillProductIDs(ctx, out); err != nil {
		return nil, summary, err
	}
	res, err := e.prepare(ctx, itemProductRefs(out))
	if err != nil {
		return nil, summary, err
	}

	for i := range out {
		item := &out[i]
		if !item.UnitPrice.Valid {
			summary.HasMissingPrice = true
			continue
		}
		quantity := decimal.NewFromInt(int64(item.Quantity))
		if item.FeeApplied {
			summary.ComputedItemTotal = summary.ComputedItemTotal.Add(item.UnitPrice.Decimal.Mul(quantity))
			continue
		}

		base := item.UnitPrice.Decimal
		feeAmount := decimal.Zero
		fee := res.feeFor(item.ProductID)
		if fee != nil {
			feeAmount = Amount(base, fee.Rate)
			item.FeeID = fee.ID
			item.FeeLevel = fee.Level
			if summary.AppliedFees == nil {
				summary.AppliedFees = make(map[string]Fee)
			}
			summary.AppliedFees[fee.ID] = *fee
		}
		finalPrice := base.Add(feeAmount)
		item.FeeAmount = feeAmount
		item.FinalPrice = decimal.NewNullDecimal(finalPrice)
		item.UnitPrice = decimal.NewNullDecimal(finalPrice)
		item.FeeApplied = true

		lineFee := feeAmount.Mul(quantity)
		lineTotal := finalPrice.Mul(quantity)
		summary.FeeTotal = summary.FeeTotal.Add(lineFee)
		summary.ComputedItemTotal = summary.ComputedItemTotal.Add(lineTotal)

		for _, field := range ItemSeededFields {
			item.Amounts.AddOrSeed(field, lineFee, lineTotal)
		}
		for _, field := range e.adjustOnly {
			item.Amounts.AddIfPresent(field, lineFee)
		}
		if fee != nil {
			e.observe(ScopeLineItem, fee, lineFee)
		}
	}
	return out, summary, nil
}

// ApplyToContainer 为购物车/订单计算服务费并重算总额，返回新对象。
func (e *Engine) ApplyToContainer(ctx context.Context, c Container) (Container, ContainerSummary, error) {
	out := Container{
		ID:              c.ID,
		Amounts:         c.Amounts.Clone(),
		ShippingMethods: append([]ShippingMethod(nil), c.ShippingMethods...),
	}
	summary := ContainerSummary{
		ItemsSummary:  ItemsSummary{FeeTotal: decimal.Zero, ComputedItemTotal: decimal.Zero},
		ShippingTotal: decimal.Zero,
	}
	if len(c.Items) == 0 {
		out.Items = cloneItems(c.Items)
		return out, summary, nil
	}

	items, itemsSummary, err := e.ApplyToItems(ctx, c.Items)
	if err != nil {
		return Container{}, summary, err
	}
	out.Items = items
	summary.ItemsSummary = itemsSummary

	if !itemsSummary.FeeTotal.IsZero() {
		for _, field := range ParentFeeFields {
			out.Amounts.AddIfPresent(field, itemsSummary.FeeTotal)
		}
	}

	summary.ShippingTotal = shippingTotal(out)
	if !itemsSummary.HasMissingPrice {
		out.Amounts[FieldSubtotal] = itemsSummary.ComputedItemTotal
		out.Amounts[FieldTotal] = itemsSummary.ComputedItemTotal.Add(summary.ShippingTotal)
		return out, summary, nil
	}
	if subtotal, ok := out.Amounts.Get(FieldSubtotal); ok {
		out.Amounts[FieldTotal] = subtotal.Add(summary.ShippingTotal)
	}
	return out, summary, nil
}

// shippingTotal 优先 shipping_total，其次 shipping_subtotal，最后累加配送方式金额
func shippingTotal(c Container) decimal.Decimal {
	if value, ok := c.Amounts.Get(FieldShippingTotal); ok {
		return value
	}
	if value, ok := c.Amounts.Get(FieldShippingSubtotal); ok {
		return value
	}
	total := decimal.Zero
	for _, method := range c.ShippingMethods {
		total = total.Add(method.Amount)
	}
	return total
}

func itemProductRefs(items []LineItem) []ProductRef {
	refs := make([]ProductRef, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		ref := ProductRef{ID: item.ProductID}
		if item.Product != nil && item.Product.AttributesLoaded {
			ref.CategoryIDs = item.Product.CategoryIDs
			ref.CollectionID = item.Product.CollectionID
			ref.AttributesLoaded = true
		}
		refs = append(refs, ref)
	}
	return refs
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Amounts = item.Amounts.Clone()
		if item.Product != nil {
			product := *item.Product
			product.CategoryIDs = copyStrings(item.Product.CategoryIDs)
			out[i].Product = &product
		}
	}
	return out
}
