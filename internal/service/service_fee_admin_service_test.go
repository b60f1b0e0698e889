package service

import (
	"errors"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"

	"github.com/shopspring/decimal"
)

func rate(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestServiceFeeAdminCreateNormalizesInput(t *testing.T) {
	db := setupServiceTestDB(t, "service_fee_admin_create")
	svc := NewServiceFeeAdminService(repository.NewServiceFeeRepository(db))

	fee, err := svc.Create(ServiceFeeInput{
		DisplayName:   "  Shoe Fee ",
		ChargingLevel: "item_level",
		Rate:          rate(10),
		EligibilityConfig: &models.ServiceFeeEligibility{
			Include: &models.EligibilityScope{Categories: []string{" cat_shoes", "cat_shoes", ""}},
		},
	})
	if err != nil {
		t.Fatalf("create fee failed: %v", err)
	}
	if fee.ID == "" || fee.DisplayName != "Shoe Fee" || fee.FeeName != "shoe_fee" {
		t.Fatalf("unexpected fee: %+v", fee)
	}
	if fee.ChargingLevel != constants.ServiceFeeLevelItem || fee.Status != constants.ServiceFeeStatusActive {
		t.Fatalf("unexpected level/status: %s/%s", fee.ChargingLevel, fee.Status)
	}
	cats := fee.EligibilityConfig.Include.Categories
	if len(cats) != 1 || cats[0] != "cat_shoes" {
		t.Fatalf("unexpected categories: %v", cats)
	}

	stored, err := svc.Get(fee.ID)
	if err != nil {
		t.Fatalf("get fee failed: %v", err)
	}
	if !stored.Rate.Valid || !stored.Rate.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected stored rate: %+v", stored.Rate)
	}
}

func TestServiceFeeAdminValidation(t *testing.T) {
	db := setupServiceTestDB(t, "service_fee_admin_validation")
	svc := NewServiceFeeAdminService(repository.NewServiceFeeRepository(db))
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	cases := []struct {
		name  string
		input ServiceFeeInput
		want  error
	}{
		{"missing name", ServiceFeeInput{ChargingLevel: constants.ServiceFeeLevelGlobal, Rate: rate(1)}, ErrServiceFeeInvalid},
		{"unknown level", ServiceFeeInput{DisplayName: "x", ChargingLevel: "VENDOR", Rate: rate(1)}, ErrServiceFeeLevelInvalid},
		{"unknown status", ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelGlobal, Rate: rate(1), Status: "LIVE"}, ErrServiceFeeInvalid},
		{"missing rate", ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelGlobal}, ErrServiceFeeRateInvalid},
		{"negative rate", ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelGlobal, Rate: rate(-1)}, ErrServiceFeeRateInvalid},
		{"inverted window", ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelGlobal, Rate: rate(1), ValidFrom: &from, ValidTo: &to}, ErrServiceFeeWindow},
		{
			"global with config",
			ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelGlobal, Rate: rate(1), EligibilityConfig: &models.ServiceFeeEligibility{VendorGroup: []string{"g"}}},
			ErrServiceFeeConfig,
		},
		{
			"item with vendors",
			ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelItem, Rate: rate(1), EligibilityConfig: &models.ServiceFeeEligibility{Vendors: &models.VendorSelector{All: true}}},
			ErrServiceFeeConfig,
		},
		{
			"shop with include",
			ServiceFeeInput{DisplayName: "x", ChargingLevel: constants.ServiceFeeLevelShop, Rate: rate(1), EligibilityConfig: &models.ServiceFeeEligibility{Include: &models.EligibilityScope{Categories: []string{"c"}}}},
			ErrServiceFeeConfig,
		},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestServiceFeeAdminUpdateAndDelete(t *testing.T) {
	db := setupServiceTestDB(t, "service_fee_admin_update")
	svc := NewServiceFeeAdminService(repository.NewServiceFeeRepository(db))

	fee, err := svc.Create(ServiceFeeInput{
		DisplayName:   "Vendors",
		ChargingLevel: constants.ServiceFeeLevelShop,
		Rate:          rate(8),
		Status:        constants.ServiceFeeStatusPending,
	})
	if err != nil {
		t.Fatalf("create fee failed: %v", err)
	}

	updated, err := svc.Update(fee.ID, ServiceFeeInput{
		DisplayName:   "Vendors",
		ChargingLevel: constants.ServiceFeeLevelShop,
		Rate:          rate(12),
		EligibilityConfig: &models.ServiceFeeEligibility{
			Vendors: &models.VendorSelector{All: true, IDs: []string{"ignored"}},
		},
	})
	if err != nil {
		t.Fatalf("update fee failed: %v", err)
	}
	if updated.Status != constants.ServiceFeeStatusPending {
		t.Fatalf("status should be kept when not provided, got %s", updated.Status)
	}
	if !updated.EligibilityConfig.Vendors.All || len(updated.EligibilityConfig.Vendors.IDs) != 0 {
		t.Fatalf("unexpected vendors selector: %+v", updated.EligibilityConfig.Vendors)
	}

	list, total, err := svc.List(repository.ServiceFeeListFilter{ChargingLevel: "shop_level"})
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("unexpected list result: total=%d err=%v", total, err)
	}

	if err := svc.Delete(fee.ID); err != nil {
		t.Fatalf("delete fee failed: %v", err)
	}
	if _, err := svc.Get(fee.ID); !errors.Is(err, ErrServiceFeeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := svc.Update("sfee_missing", ServiceFeeInput{}); !errors.Is(err, ErrServiceFeeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
