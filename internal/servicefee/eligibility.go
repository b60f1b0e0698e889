package servicefee

import (
	"context"
	"fmt"
)

// ProductAttributes 商品的分类与合集
type ProductAttributes struct {
	ProductID    string
	CollectionID string
	CategoryIDs  []string
}

// VendorProductLink 商家与商品关联
type VendorProductLink struct {
	VendorID  string
	ProductID string
}

// VendorGroupLink 商家分组与商家关联
type VendorGroupLink struct {
	VendorGroupID string
	VendorID      string
}

// ProductAttributeReader 批量读取商品分类/合集
type ProductAttributeReader interface {
	ListProductAttributes(ctx context.Context, productIDs []string) ([]ProductAttributes, error)
}

// VariantProductReader 批量解析规格所属商品，返回 variantID -> productID
type VariantProductReader interface {
	ListVariantProducts(ctx context.Context, variantIDs []string) (map[string]string, error)
}

// VendorProductLinkReader 商家-商品关联读取能力，每种宿主接线方式一个实现
type VendorProductLinkReader interface {
	ListVendorProductLinks(ctx context.Context, productIDs []string) ([]VendorProductLink, error)
}

// VendorGroupLinkReader 商家分组关联读取
type VendorGroupLinkReader interface {
	ListVendorGroupLinks(ctx context.Context, vendorIDs []string) ([]VendorGroupLink, error)
}

// ProductRef 待计算的商品引用，AttributesLoaded 表示调用方已带上分类/合集
type ProductRef struct {
	ID               string
	CategoryIDs      []string
	CollectionID     string
	AttributesLoaded bool
}

// Resolver 商品匹配事实解析器
type Resolver struct {
	products     ProductAttributeReader
	vendorLinks  VendorProductLinkReader
	vendorGroups VendorGroupLinkReader
}

// NewResolver 创建解析器，任一 reader 为 nil 时对应事实视为空
func NewResolver(products ProductAttributeReader, vendorLinks VendorProductLinkReader, vendorGroups VendorGroupLinkReader) *Resolver {
	return &Resolver{
		products:     products,
		vendorLinks:  vendorLinks,
		vendorGroups: vendorGroups,
	}
}

// BuildEligibility 按批次构建商品匹配事实。
// 没有商品级规则时不查分类/合集，没有店铺级规则时不查商家/分组。
func (r *Resolver) BuildEligibility(ctx context.Context, products []ProductRef, needsItemLevel, needsShopLevel bool) (map[string]Eligibility, error) {
	result := make(map[string]Eligibility, len(products))
	ids := make([]string, 0, len(products))
	var pending []string
	for _, product := range products {
		if product.ID == "" {
			continue
		}
		if _, seen := result[product.ID]; seen {
			continue
		}
		elig := Eligibility{ProductID: product.ID}
		if needsItemLevel && product.AttributesLoaded {
			elig.CategoryIDs = copyStrings(product.CategoryIDs)
			elig.CollectionID = product.CollectionID
		} else if needsItemLevel {
			pending = append(pending, product.ID)
		}
		result[product.ID] = elig
		ids = append(ids, product.ID)
	}
	if len(ids) == 0 {
		return result, nil
	}

	if len(pending) > 0 && r.products != nil {
		attrs, err := r.products.ListProductAttributes(ctx, pending)
		if err != nil {
			return nil, fmt.Errorf("list product attributes: %w", err)
		}
		for _, attr := range attrs {
			elig, ok := result[attr.ProductID]
			if !ok {
				continue
			}
			elig.CategoryIDs = copyStrings(attr.CategoryIDs)
			elig.CollectionID = attr.CollectionID
			result[attr.ProductID] = elig
		}
	}

	if !needsShopLevel || r.vendorLinks == nil {
		return result, nil
	}
	links, err := r.vendorLinks.ListVendorProductLinks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list vendor product links: %w", err)
	}
	vendorIDs := make([]string, 0, len(links))
	seenVendor := make(map[string]struct{}, len(links))
	for _, link := range links {
		elig, ok := result[link.ProductID]
		if !ok || elig.VendorID != "" || link.VendorID == "" {
			continue
		}
		elig.VendorID = link.VendorID
		result[link.ProductID] = elig
		if _, dup := seenVendor[link.VendorID]; !dup {
			seenVendor[link.VendorID] = struct{}{}
			vendorIDs = append(vendorIDs, link.VendorID)
		}
	}
	if len(vendorIDs) == 0 || r.vendorGroups == nil {
		return result, nil
	}

	groupLinks, err := r.vendorGroups.ListVendorGroupLinks(ctx, vendorIDs)
	if err != nil {
		return nil, fmt.Errorf("list vendor group links: %w", err)
	}
	groupsByVendor := make(map[string][]string, len(vendorIDs))
	for _, link := range groupLinks {
		if link.VendorGroupID == "" {
			continue
		}
		groupsByVendor[link.VendorID] = append(groupsByVendor[link.VendorID], link.VendorGroupID)
	}
	for id, elig := range result {
		if elig.VendorID == "" {
			continue
		}
		elig.VendorGroupIDs = copyStrings(groupsByVendor[elig.VendorID])
		result[id] = elig
	}
	return result, nil
}

func copyStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
