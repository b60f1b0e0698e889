package servicefee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Observer 服务费计算结果观察者（用于指标）
type Observer interface {
	ObserveFee(scope string, fee *Fee, amount decimal.Decimal)
}

// 观察范围
const (
	ScopeLineItem = "line_item"
	ScopeProduct  = "product"
)

// EngineOptions 引擎依赖，全部显式注入
type EngineOptions struct {
	Fees                 FeeSource
	Products             ProductAttributeReader
	Variants             VariantProductReader
	VendorLinks          VendorProductLinkReader
	VendorGroups         VendorGroupLinkReader
	Clock                func() time.Time
	AdjustOnlyItemFields []string
	Observer             Observer
}

// Engine 服务费解析与应用引擎
type Engine struct {
	fees       FeeSource
	variants   VariantProductReader
	resolver   *Resolver
	clock      func() time.Time
	adjustOnly []string
	observer   Observer
}

// NewEngine 创建服务费引擎
func NewEngine(opts EngineOptions) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		fees:       opts.Fees,
		variants:   opts.Variants,
		resolver:   NewResolver(opts.Products, opts.VendorLinks, opts.VendorGroups),
		clock:      clock,
		adjustOnly: adjustOnlyFields(opts.AdjustOnlyItemFields),
		observer:   opts.Observer,
	}
}

// adjustOnlyFields 剔除空值、重复值及已按初始化规则累加的字段，结果为空时使用默认字段
func adjustOnlyFields(fields []string) []string {
	seen := make(map[string]struct{}, len(ItemSeededFields)+len(fields))
	for _, field := range ItemSeededFields {
		seen[field] = struct{}{}
	}
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, field)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultAdjustOnlyItemFields...)
	}
	return out
}

// resolution 单次调用内共享的规则与匹配事实
type resolution struct {
	catalog     Catalog
	eligibility map[string]Eligibility
}

// feeFor 解析商品适用的服务费；缺少匹配事实时退化为全局规则
func (r *resolution) feeFor(productID string) *Fee {
	if productID != "" {
		if elig, ok := r.eligibility[productID]; ok {
			return Resolve(elig, r.catalog)
		}
	}
	return BestFee(r.catalog.Global)
}

// prepare 每次调用重新读取有效规则，并按需批量构建匹配事实
func (e *Engine) prepare(ctx context.Context, products []ProductRef) (*resolution, error) {
	catalog, err := LoadActiveFees(ctx, e.fees, e.clock())
	if err != nil {
		return nil, err
	}
	res := &resolution{catalog: catalog}
	if catalog.Empty() {
		return res, nil
	}
	needsItem := len(catalog.Item) > 0
	needsShop := len(catalog.Shop) > 0
	if !needsItem && !needsShop {
		return res, nil
	}
	res.eligibility, err = e.resolver.BuildEligibility(ctx, products, needsItem, needsShop)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ResolveFees 为一批商品解析适用服务费，返回 productID -> 规则（无规则的商品不出现）
func (e *Engine) ResolveFees(ctx context.Context, products []ProductRef) (map[string]Fee, error) {
	res, err := e.prepare(ctx, products)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Fee, len(products))
	for _, product := range products {
		if fee := res.feeFor(product.ID); fee != nil {
			out[product.ID] = *fee
		}
	}
	return out, nil
}

// fillProductIDs 行项目只有规格ID时，批量解析其商品ID
func (e *Engine) fillProductIDs(ctx context.Context, items []LineItem) error {
	var variantIDs []string
	for _, item := range items {
		if item.ProductID == "" && item.VariantID != "" {
			variantIDs = append(variantIDs, item.VariantID)
		}
	}
	if len(variantIDs) == 0 || e.variants == nil {
		return nil
	}
	mapping, err := e.variants.ListVariantProducts(ctx, variantIDs)
	if err != nil {
		return fmt.Errorf("list variant products: %w", err)
	}
	for i := range items {
		if items[i].ProductID != "" {
			continue
		}
		if productID, ok := mapping[items[i].VariantID]; ok {
			items[i].ProductID = productID
		}
	}
	return nil
}

func (e *Engine) observe(scope string, fee *Fee, amount decimal.Decimal) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveFee(scope, fee, amount)
}
