package servicefee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyToProducts(t *testing.T) {
	created := testNow.Add(-time.Hour)
	fx := newFixture(
		shopFee("fee_vendor_a", "8", created, ShopRule{Vendors: []string{"vendor_A"}}),
		globalFee("fee_global", "3", created),
	)
	fx.links.owners["prod_a"] = "vendor_A"
	products := []Product{
		{
			ProductRef: ProductRef{ID: "prod_a"},
			Variants: []Variant{
				{ID: "var_1", CalculatedPrice: &CalculatedPrice{CalculatedAmount: price("100")}},
				{ID: "var_2", CalculatedPrice: &CalculatedPrice{}},
				{ID: "var_3"},
			},
		},
		{
			ProductRef: ProductRef{ID: "prod_b"},
			Variants:   []Variant{{ID: "var_4", CalculatedPrice: &CalculatedPrice{CalculatedAmount: price("200")}}},
		},
	}

	out, err := fx.engine().ApplyToProducts(context.Background(), products)
	require.NoError(t, err)

	annotated := out[0].Variants[0].CalculatedPrice
	require.True(t, dec("100").Equal(annotated.CalculatedAmount.Decimal), "calculated amount stays pre-fee")
	require.True(t, dec("108").Equal(annotated.FinalPrice.Decimal))
	require.Equal(t, "fee_vendor_a", annotated.FeeID)

	require.False(t, out[0].Variants[1].CalculatedPrice.FinalPrice.Valid)
	require.Nil(t, out[0].Variants[2].CalculatedPrice)

	require.True(t, dec("206").Equal(out[1].Variants[0].CalculatedPrice.FinalPrice.Decimal))
	require.False(t, products[0].Variants[0].CalculatedPrice.FinalPrice.Valid, "input must not be mutated")
	require.Equal(t, 1, fx.links.calls)
}

func TestResolveFees(t *testing.T) {
	created := testNow.Add(-time.Hour)
	fx := newFixture(itemFee("fee_shoes", "5", created, ItemRule{IncludeCategories: []string{"cat_shoes"}}))
	fx.products.attrs["prod_shoe"] = ProductAttributes{ProductID: "prod_shoe", CategoryIDs: []string{"cat_shoes"}}

	fees, err := fx.engine().ResolveFees(context.Background(), []ProductRef{{ID: "prod_shoe"}, {ID: "prod_hat"}})
	require.NoError(t, err)
	require.Len(t, fees, 1)
	require.Equal(t, "fee_shoes", fees["prod_shoe"].ID)
}
