package servicefee

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Resolve 按 商品级 -> 店铺级 -> 全局 的优先级选出唯一适用的服务费，均无时返回 nil。
func Resolve(elig Eligibility, catalog Catalog) *Fee {
	if len(catalog.Item) > 0 {
		matched := make([]Fee, 0, len(catalog.Item))
		for _, fee := range catalog.Item {
			if MatchesItem(fee.ItemRule, elig) {
				matched = append(matched, fee)
			}
		}
		if best := BestFee(matched); best != nil {
			return best
		}
	}
	if len(catalog.Shop) > 0 {
		matched := make([]Fee, 0, len(catalog.Shop))
		for _, fee := range catalog.Shop {
			if MatchesShop(fee.ShopRule, elig) {
				matched = append(matched, fee)
			}
		}
		if best := BestFee(matched); best != nil {
			return best
		}
	}
	return BestFee(catalog.Global)
}

// BestFee 选出最近生效的服务费，生效时间相同则取费率更高者。
// 两项都相同时保持输入顺序（稳定排序），结果依赖上游返回顺序。
func BestFee(fees []Fee) *Fee {
	if len(fees) == 0 {
		return nil
	}
	sorted := make([]Fee, len(fees))
	copy(sorted, fees)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, ej := sorted[i].effectiveAt(), sorted[j].effectiveAt()
		if !ei.Equal(ej) {
			return ei.After(ej)
		}
		return rateOf(sorted[i]).GreaterThan(rateOf(sorted[j]))
	})
	best := sorted[0]
	return &best
}

// MatchesItem 商品级匹配：排除优先；包含为空表示不限制
func MatchesItem(rule *ItemRule, elig Eligibility) bool {
	if rule == nil {
		return true
	}
	if intersects(rule.ExcludeCategories, elig.CategoryIDs) || contains(rule.ExcludeCollections, elig.CollectionID) {
		return false
	}
	if len(rule.IncludeCategories) == 0 && len(rule.IncludeCollections) == 0 {
		return true
	}
	return intersects(rule.IncludeCategories, elig.CategoryIDs) || contains(rule.IncludeCollections, elig.CollectionID)
}

// MatchesShop 店铺级匹配：商家与分组都为空表示不限制
func MatchesShop(rule *ShopRule, elig Eligibility) bool {
	if rule == nil {
		return true
	}
	if rule.AllVendors {
		return elig.VendorID != ""
	}
	if len(rule.Vendors) == 0 && len(rule.VendorGroups) == 0 {
		return true
	}
	if contains(rule.Vendors, elig.VendorID) {
		return true
	}
	return intersects(rule.VendorGroups, elig.VendorGroupIDs)
}

// rateOf 空费率按 0 参与排序
func rateOf(fee Fee) decimal.Decimal {
	if !fee.Rate.Valid {
		return decimal.Zero
	}
	return fee.Rate.Decimal
}

func contains(set []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range set {
		if item == value {
			return true
		}
	}
	return false
}

func intersects(set []string, values []string) bool {
	if len(set) == 0 || len(values) == 0 {
		return false
	}
	for _, value := range values {
		if contains(set, value) {
			return true
		}
	}
	return false
}
