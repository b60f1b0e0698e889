package servicefee

import (
	"context"
	"time"

	"github.com/marketfee-next/internal/constants"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeFees struct {
	fees  []Fee
	err   error
	calls int
}

func (f *fakeFees) ListServiceFees(ctx context.Context) ([]Fee, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.fees, nil
}

type fakeProducts struct {
	attrs map[string]ProductAttributes
	calls int
	last  []string
}

func (f *fakeProducts) ListProductAttributes(ctx context.Context, productIDs []string) ([]ProductAttributes, error) {
	f.calls++
	f.last = append([]string(nil), productIDs...)
	out := make([]ProductAttributes, 0, len(productIDs))
	for _, id := range productIDs {
		if attr, ok := f.attrs[id]; ok {
			out = append(out, attr)
		}
	}
	return out, nil
}

type fakeVariants struct {
	mapping map[string]string
	calls   int
}

func (f *fakeVariants) ListVariantProducts(ctx context.Context, variantIDs []string) (map[string]string, error) {
	f.calls++
	out := make(map[string]string, len(variantIDs))
	for _, id := range variantIDs {
		if productID, ok := f.mapping[id]; ok {
			out[id] = productID
		}
	}
	return out, nil
}

type fakeVendorLinks struct {
	owners map[string]string
	calls  int
	err    error
}

func (f *fakeVendorLinks) ListVendorProductLinks(ctx context.Context, productIDs []string) ([]VendorProductLink, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []VendorProductLink
	for _, id := range productIDs {
		if vendorID, ok := f.owners[id]; ok {
			out = append(out, VendorProductLink{VendorID: vendorID, ProductID: id})
		}
	}
	return out, nil
}

type fakeVendorGroups struct {
	groups map[string][]string
	calls  int
}

func (f *fakeVendorGroups) ListVendorGroupLinks(ctx context.Context, vendorIDs []string) ([]VendorGroupLink, error) {
	f.calls++
	var out []VendorGroupLink
	for _, id := range vendorIDs {
		for _, group := range f.groups[id] {
			out = append(out, VendorGroupLink{VendorGroupID: group, VendorID: id})
		}
	}
	return out, nil
}

type recordingObserver struct {
	scopes []string
}

func (r *recordingObserver) ObserveFee(scope string, fee *Fee, amount decimal.Decimal) {
	r.scopes = append(r.scopes, scope)
}

type fixture struct {
	fees     *fakeFees
	products *fakeProducts
	variants *fakeVariants
	links    *fakeVendorLinks
	groups   *fakeVendorGroups
}

func newFixture(fees ...Fee) *fixture {
	return &fixture{
		fees:     &fakeFees{fees: fees},
		products: &fakeProducts{attrs: map[string]ProductAttributes{}},
		variants: &fakeVariants{mapping: map[string]string{}},
		links:    &fakeVendorLinks{owners: map[string]string{}},
		groups:   &fakeVendorGroups{groups: map[string][]string{}},
	}
}

func (f *fixture) engine() *Engine {
	return NewEngine(EngineOptions{
		Fees:         f.fees,
		Products:     f.products,
		Variants:     f.variants,
		VendorLinks:  f.links,
		VendorGroups: f.groups,
		Clock:        func() time.Time { return testNow },
	})
}

func globalFee(id, rate string, created time.Time) Fee {
	return Fee{
		ID:        id,
		Level:     LevelGlobal,
		Rate:      ParseRate(rate),
		Status:    constants.ServiceFeeStatusActive,
		CreatedAt: created,
	}
}

func itemFee(id, rate string, created time.Time, rule ItemRule) Fee {
	fee := globalFee(id, rate, created)
	fee.Level = LevelItem
	fee.ItemRule = &rule
	return fee
}

func shopFee(id, rate string, created time.Time, rule ShopRule) Fee {
	fee := globalFee(id, rate, created)
	fee.Level = LevelShop
	fee.ShopRule = &rule
	return fee
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func price(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(v))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
