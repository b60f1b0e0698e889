package servicefee

import (
	"context"
	"fmt"
	"time"

	"github.com/marketfee-next/internal/constants"
)

// FeeSource 服务费规则读取接口（全量读取，不下推过滤条件）
type FeeSource interface {
	ListServiceFees(ctx context.Context) ([]Fee, error)
}

// Catalog 按收费层级分组后的有效服务费
type Catalog struct {
	Item   []Fee
	Shop   []Fee
	Global []Fee
}

// Empty 是否没有任何有效服务费
func (c Catalog) Empty() bool {
	return len(c.Item) == 0 && len(c.Shop) == 0 && len(c.Global) == 0
}

// IsActive 判断服务费在指定时刻是否有效
func IsActive(fee Fee, now time.Time) bool {
	if fee.Status != constants.ServiceFeeStatusActive {
		return false
	}
	if fee.ValidFrom != nil && fee.ValidFrom.After(now) {
		return false
	}
	if fee.ValidTo != nil && fee.ValidTo.Before(now) {
		return false
	}
	return true
}

// LoadActiveFees 读取全部服务费并按层级拆分有效项
func LoadActiveFees(ctx context.Context, source FeeSource, now time.Time) (Catalog, error) {
	var catalog Catalog
	if source == nil {
		return catalog, nil
	}
	fees, err := source.ListServiceFees(ctx)
	if err != nil {
		return catalog, fmt.Errorf("list service fees: %w", err)
	}
	for _, fee := range fees {
		if !IsActive(fee, now) {
			continue
		}
		switch fee.Level {
		case LevelItem:
			catalog.Item = append(catalog.Item, fee)
		case LevelShop:
			catalog.Shop = append(catalog.Shop, fee)
		case LevelGlobal:
			catalog.Global = append(catalog.Global, fee)
		}
	}
	return catalog, nil
}
