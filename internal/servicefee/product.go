package servicefee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product 商品展示价计算对象
type Product struct {
	ProductRef
	Variants []Variant
}

// Variant 商品规格
type Variant struct {
	ID              string
	CalculatedPrice *CalculatedPrice
}

// CalculatedPrice 规格计算价，CalculatedAmount 为不含服务费的参考价
type CalculatedPrice struct {
	CalculatedAmount decimal.NullDecimal
	FinalPrice       decimal.NullDecimal
	FeeAmount        decimal.Decimal
	FeeID            string
}

// ApplyToProducts 为商品规格展示价附加服务费，返回新的商品列表
func (e *Engine) ApplyToProducts(ctx context.Context, products []Product) ([]Product, error) {
	out := cloneProducts(products)
	if len(out) == 0 {
		return out, nil
	}
	refs := make([]ProductRef, 0, len(out))
	for _, product := range out {
		refs = append(refs, product.ProductRef)
	}
	res, err := e.prepare(ctx, refs)
	if err != nil {
		return nil, err
	}

	for i := range out {
		fee := res.feeFor(out[i].ID)
		for j := range out[i].Variants {
			price := out[i].Variants[j].CalculatedPrice
			if price == nil || !price.CalculatedAmount.Valid {
				continue
			}
			feeAmount := decimal.Zero
			price.FeeID = ""
			if fee != nil {
				feeAmount = Amount(price.CalculatedAmount.Decimal, fee.Rate)
				price.FeeID = fee.ID
				e.observe(ScopeProduct, fee, feeAmount)
			}
			price.FeeAmount = feeAmount
			price.FinalPrice = decimal.NewNullDecimal(price.CalculatedAmount.Decimal.Add(feeAmount))
		}
	}
	return out, nil
}

func cloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, product := range products {
		out[i] = product
		out[i].CategoryIDs = copyStrings(product.CategoryIDs)
		out[i].Variants = make([]Variant, len(product.Variants))
		for j, variant := range product.Variants {
			out[i].Variants[j] = variant
			if variant.CalculatedPrice != nil {
				price := *variant.CalculatedPrice
				out[i].Variants[j].CalculatedPrice = &price
			}
		}
	}
	return out
}
