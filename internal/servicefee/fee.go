package servicefee

import (
	"time"

	"github.com/marketfee-next/internal/constants"

	"github.com/shopspring/decimal"
)

// ChargingLevel 服务费收费层级
type ChargingLevel string

const (
	LevelGlobal ChargingLevel = constants.ServiceFeeLevelGlobal
	LevelItem   ChargingLevel = constants.ServiceFeeLevelItem
	LevelShop   ChargingLevel = constants.ServiceFeeLevelShop
)

// Fee 引擎使用的服务费规则视图
// Level 决定 ItemRule / ShopRule 中哪一个生效，GLOBAL 两者都不使用。
type Fee struct {
	ID          string
	DisplayName string
	Name        string
	Level       ChargingLevel
	Rate        decimal.NullDecimal
	ValidFrom   *time.Time
	ValidTo     *time.Time
	Status      string
	ItemRule    *ItemRule
	ShopRule    *ShopRule
	CreatedAt   time.Time
}

// ItemRule 商品级规则：按分类/合集包含与排除
type ItemRule struct {
	IncludeCategories  []string
	IncludeCollections []string
	ExcludeCategories  []string
	ExcludeCollections []string
}

// ShopRule 店铺级规则：按商家/商家分组限定
type ShopRule struct {
	// AllVendors 为 true 时匹配任意有商家的商品，同时忽略 VendorGroups
	AllVendors   bool
	Vendors      []string
	VendorGroups []string
}

// effectiveAt 规则生效时间：max(valid_from, created_at)
func (f *Fee) effectiveAt() time.Time {
	if f.ValidFrom != nil && f.ValidFrom.After(f.CreatedAt) {
		return *f.ValidFrom
	}
	return f.CreatedAt
}

// Eligibility 商品的匹配事实（每次请求重新计算）
type Eligibility struct {
	ProductID      string
	CategoryIDs    []string
	CollectionID   string
	VendorID       string
	VendorGroupIDs []string
}
