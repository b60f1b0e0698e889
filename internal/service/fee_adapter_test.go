package service

import (
	"testing"

	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/servicefee"

	"github.com/shopspring/decimal"
)

func TestParentAmountsRoundTripKeepsAbsentFields(t *testing.T) {
	parent := models.ParentAmounts{
		Subtotal:  models.NewNullMoney(decimal.NewFromInt(100)),
		ItemTotal: models.NewNullMoney(decimal.NewFromInt(100)),
	}
	amounts := toEngineAmounts(parentAmountFields(&parent))
	if len(amounts) != 2 {
		t.Fatalf("only tracked fields should be exported, got %v", amounts)
	}

	amounts[servicefee.FieldItemTotal] = decimal.RequireFromString("110.005")
	amounts[servicefee.FieldTotal] = decimal.NewFromInt(130)
	mergeEngineAmounts(parentAmountFields(&parent), amounts)

	mustMoney(t, parent.Total, 130, "total")
	if parent.ItemTotal.Decimal.String() != "110.01" {
		t.Fatalf("host amounts are stored with 2 decimals, got %s", parent.ItemTotal.Decimal)
	}
	if parent.OriginalTotal.Valid || parent.ShippingTotal.Valid {
		t.Fatalf("absent fields must stay absent")
	}
}

func TestProductRefUsesPreloadedCategories(t *testing.T) {
	collection := "pcol_summer"
	product := &models.Product{
		ID:           "prod_1",
		CollectionID: &collection,
		Categories:   []models.Category{{ID: "cat_a"}, {ID: "cat_b"}},
	}
	ref := productRef(product)
	if ref == nil || !ref.AttributesLoaded {
		t.Fatalf("expected loaded attributes, got %+v", ref)
	}
	if ref.CollectionID != collection || len(ref.CategoryIDs) != 2 {
		t.Fatalf("unexpected product ref: %+v", ref)
	}
	if productRef(nil) != nil {
		t.Fatalf("nil product should produce no ref")
	}
}

func TestAppliedServiceFeesGroupsProductsByFee(t *testing.T) {
	items := []servicefee.LineItem{
		{ProductID: "prod_a", FeeID: "sfee_1", FeeLevel: servicefee.LevelItem},
		{ProductID: "prod_b", FeeID: "sfee_2", FeeLevel: servicefee.LevelGlobal},
		{ProductID: "prod_c", FeeID: "sfee_1", FeeLevel: servicefee.LevelItem},
		{ProductID: "prod_a", FeeID: "sfee_1", FeeLevel: servicefee.LevelItem},
		{ProductID: "prod_d"},
	}
	fees := map[string]servicefee.Fee{
		"sfee_1": {ID: "sfee_1", DisplayName: "Shoes", Level: servicefee.LevelItem},
		"sfee_2": {ID: "sfee_2", DisplayName: "Platform", Level: servicefee.LevelGlobal},
	}
	got := appliedServiceFees(items, fees)
	if len(got) != 2 {
		t.Fatalf("expected two fee groups, got %+v", got)
	}
	if got[0].ID != "sfee_1" || got[0].DisplayName != "Shoes" || len(got[0].ProductIDs) != 2 || got[0].ProductIDs[1] != "prod_c" {
		t.Fatalf("unexpected first group: %+v", got[0])
	}
	if got[1].ID != "sfee_2" || got[1].ChargingLevel != "GLOBAL" {
		t.Fatalf("unexpected second group: %+v", got[1])
	}
}
