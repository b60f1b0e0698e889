package service

import (
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/servicefee"

	"github.com/shopspring/decimal"
)

const fieldTaxTotal = "tax_total"

// parentAmountFields 购物车/订单金额字段与引擎字段名的对应
func parentAmountFields(p *models.ParentAmounts) map[string]*models.NullMoney {
	return map[string]*models.NullMoney{
		servicefee.FieldSubtotal:             &p.Subtotal,
		servicefee.FieldTotal:                &p.Total,
		servicefee.FieldItemTotal:            &p.ItemTotal,
		servicefee.FieldItemSubtotal:         &p.ItemSubtotal,
		servicefee.FieldOriginalTotal:        &p.OriginalTotal,
		servicefee.FieldOriginalItemTotal:    &p.OriginalItemTotal,
		servicefee.FieldOriginalItemSubtotal: &p.OriginalItemSubtotal,
		servicefee.FieldShippingTotal:        &p.ShippingTotal,
		servicefee.FieldShippingSubtotal:     &p.ShippingSubtotal,
		servicefee.FieldDiscountTotal:        &p.DiscountTotal,
		fieldTaxTotal:                        &p.TaxTotal,
	}
}

// lineAmountFields 行项目金额字段与引擎字段名的对应
func lineAmountFields(l *models.LineAmounts) map[string]*models.NullMoney {
	return map[string]*models.NullMoney{
		servicefee.FieldSubtotal:             &l.Subtotal,
		servicefee.FieldTotal:                &l.Total,
		servicefee.FieldOriginalTotal:        &l.OriginalTotal,
		servicefee.FieldOriginalSubtotal:     &l.OriginalSubtotal,
		servicefee.FieldOriginalItemTotal:    &l.OriginalItemTotal,
		servicefee.FieldOriginalItemSubtotal: &l.OriginalItemSubtotal,
		servicefee.FieldDiscountTotal:        &l.DiscountTotal,
		fieldTaxTotal:                        &l.TaxTotal,
	}
}

// toEngineAmounts 仅带出宿主已跟踪（非空）的字段
func toEngineAmounts(fields map[string]*models.NullMoney) servicefee.Amounts {
	amounts := make(servicefee.Amounts, len(fields))
	for field, value := range fields {
		if value.Valid {
			amounts[field] = value.Decimal
		}
	}
	return amounts
}

// mergeEngineAmounts 将引擎结果写回宿主对象
func mergeEngineAmounts(fields map[string]*models.NullMoney, amounts servicefee.Amounts) {
	for field, target := range fields {
		if value, ok := amounts.Get(field); ok {
			*target = models.NewNullMoney(value)
		}
	}
}

func toEngineShipping(methods []models.ShippingMethod) []servicefee.ShippingMethod {
	out := make([]servicefee.ShippingMethod, 0, len(methods))
	for _, method := range methods {
		out = append(out, servicefee.ShippingMethod{ID: method.ID, Amount: method.Amount.Decimal})
	}
	return out
}

// productRef 购物车项已预加载商品分类时直接复用，避免重复查询
func productRef(product *models.Product) *servicefee.ProductRef {
	if product == nil || product.ID == "" {
		return nil
	}
	ref := &servicefee.ProductRef{
		ID:               product.ID,
		CategoryIDs:      product.CategoryIDs(),
		AttributesLoaded: product.Categories != nil,
	}
	if product.CollectionID != nil {
		ref.CollectionID = *product.CollectionID
	}
	return ref
}

func cartContainer(cart *models.Cart) servicefee.Container {
	items := make([]servicefee.LineItem, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, servicefee.LineItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.NullDecimal,
			Amounts:   toEngineAmounts(lineAmountFields(&item.LineAmounts)),
			Product:   productRef(item.Product),
		})
	}
	return servicefee.Container{
		ID:              cart.ID,
		Items:           items,
		Amounts:         toEngineAmounts(parentAmountFields(&cart.ParentAmounts)),
		ShippingMethods: toEngineShipping(cart.ShippingMethods),
	}
}

func orderContainer(order *models.Order) servicefee.Container {
	items := make([]servicefee.LineItem, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, servicefee.LineItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.NullDecimal,
			Amounts:   toEngineAmounts(lineAmountFields(&item.LineAmounts)),
		})
	}
	return servicefee.Container{
		ID:              order.ID,
		Items:           items,
		Amounts:         toEngineAmounts(parentAmountFields(&order.ParentAmounts)),
		ShippingMethods: toEngineShipping(order.ShippingMethods),
	}
}

// lineFee 行项目服务费合计（单位服务费 * 数量）
func lineFee(item servicefee.LineItem) decimal.Decimal {
	return item.FeeAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func mergeCart(cart *models.Cart, result servicefee.Container, summary servicefee.ContainerSummary) {
	mergeEngineAmounts(parentAmountFields(&cart.ParentAmounts), result.Amounts)
	cart.ServiceFeeTotal = models.NewMoneyFromDecimal(summary.FeeTotal)
	for i := range cart.Items {
		if i >= len(result.Items) {
			break
		}
		applied := result.Items[i]
		item := &cart.Items[i]
		if applied.ProductID != "" {
			item.ProductID = applied.ProductID
		}
		item.UnitPrice = models.NullMoneyFrom(applied.UnitPrice)
		mergeEngineAmounts(lineAmountFields(&item.LineAmounts), applied.Amounts)
		item.ServiceFeeAmount = models.NewMoneyFromDecimal(lineFee(applied))
		item.ServiceFeeID = applied.FeeID
	}
}

func mergeOrder(order *models.Order, result servicefee.Container, summary servicefee.ContainerSummary) {
	mergeEngineAmounts(parentAmountFields(&order.ParentAmounts), result.Amounts)
	order.ServiceFeeTotal = models.NewMoneyFromDecimal(summary.FeeTotal)
	for i := range order.Items {
		if i >= len(result.Items) {
			break
		}
		applied := result.Items[i]
		item := &order.Items[i]
		if applied.ProductID != "" {
			item.ProductID = applied.ProductID
		}
		item.UnitPrice = models.NullMoneyFrom(applied.UnitPrice)
		mergeEngineAmounts(lineAmountFields(&item.LineAmounts), applied.Amounts)
		item.ServiceFeeAmount = models.NewMoneyFromDecimal(lineFee(applied))
		item.ServiceFeeID = applied.FeeID
	}
}

// toEngineProducts 商品规格计算价转为引擎输入
func toEngineProducts(products []models.Product) []servicefee.Product {
	out := make([]servicefee.Product, 0, len(products))
	for i := range products {
		product := &products[i]
		ref := productRef(product)
		if ref == nil {
			ref = &servicefee.ProductRef{}
		}
		variants := make([]servicefee.Variant, 0, len(product.Variants))
		for _, variant := range product.Variants {
			v := servicefee.Variant{ID: variant.ID}
			if variant.PriceAmount.Valid {
				v.CalculatedPrice = &servicefee.CalculatedPrice{CalculatedAmount: variant.PriceAmount.NullDecimal}
			}
			variants = append(variants, v)
		}
		out = append(out, servicefee.Product{ProductRef: *ref, Variants: variants})
	}
	return out
}

func mergeProducts(products []models.Product, annotated []servicefee.Product) {
	for i := range products {
		if i >= len(annotated) {
			break
		}
		for j := range products[i].Variants {
			if j >= len(annotated[i].Variants) {
				break
			}
			price := annotated[i].Variants[j].CalculatedPrice
			if price == nil {
				continue
			}
			products[i].Variants[j].CalculatedPrice = &models.CalculatedPrice{
				CalculatedAmount: models.NullMoneyFrom(price.CalculatedAmount),
				FinalPrice:       models.NullMoneyFrom(price.FinalPrice),
				ServiceFeeAmount: models.NewMoneyFromDecimal(price.FeeAmount),
				ServiceFeeID:     price.FeeID,
			}
		}
	}
}
