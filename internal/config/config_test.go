package config

import (
	"testing"

	"github.com/marketfee-next/internal/constants"

	"github.com/spf13/viper"
)

func TestServiceFeeConfigNormalize(t *testing.T) {
	cfg := ServiceFeeConfig{VendorLinkMode: " Registry ", OrderFanout: -1}
	cfg.Normalize()
	if cfg.VendorLinkMode != constants.VendorLinkModeRegistry {
		t.Fatalf("unexpected mode: %s", cfg.VendorLinkMode)
	}
	if cfg.OrderFanout != 8 || cfg.SnapshotLockSeconds != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	unknown := ServiceFeeConfig{VendorLinkMode: "remote"}
	unknown.Normalize()
	if unknown.VendorLinkMode != constants.VendorLinkModeModule {
		t.Fatalf("unknown mode should fall back to module, got %s", unknown.VendorLinkMode)
	}
}

func TestDefaultsUnmarshal(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal defaults failed: %v", err)
	}
	if cfg.ServiceFee.OrderFanout != 8 {
		t.Fatalf("unexpected order fanout: %d", cfg.ServiceFee.OrderFanout)
	}
	if len(cfg.ServiceFee.AdjustOnlyItemFields) != 1 || cfg.ServiceFee.AdjustOnlyItemFields[0] != "discount_total" {
		t.Fatalf("unexpected adjust-only fields: %v", cfg.ServiceFee.AdjustOnlyItemFields)
	}
	if cfg.Queue.Queues[constants.QueueSnapshot] != 6 || cfg.Queue.Queues[constants.QueueDefault] != 1 {
		t.Fatalf("unexpected queues: %v", cfg.Queue.Queues)
	}
}

func TestServiceFeeConfigNormalizeAdjustOnlyFields(t *testing.T) {
	empty := ServiceFeeConfig{AdjustOnlyItemFields: []string{}}
	empty.Normalize()
	if len(empty.AdjustOnlyItemFields) != 1 || empty.AdjustOnlyItemFields[0] != "discount_total" {
		t.Fatalf("empty list should fall back to default: %v", empty.AdjustOnlyItemFields)
	}

	custom := ServiceFeeConfig{AdjustOnlyItemFields: []string{" Tax_Total ", ""}}
	custom.Normalize()
	if len(custom.AdjustOnlyItemFields) != 1 || custom.AdjustOnlyItemFields[0] != "tax_total" {
		t.Fatalf("unexpected fields: %v", custom.AdjustOnlyItemFields)
	}
}
