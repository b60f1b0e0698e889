package repository

import (
	"context"
	"errors"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/servicefee"

	"gorm.io/gorm"
)

const productCategoryJoinTable = "product_category_products"

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	ListProductAttributes(ctx context.Context, productIDs []string) ([]servicefee.ProductAttributes, error)
	ListVariantProducts(ctx context.Context, variantIDs []string) (map[string]string, error)
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

func (r *GormProductRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Categories").Preload("Variants", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, created_at asc")
	})
}

// List 分页查询商品（带分类与规格）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("status = ?", constants.ProductStatusPublished)
	}
	if filter.CollectionID != "" {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.CategoryID != "" {
		query = query.Where("id IN (?)", r.db.Table(productCategoryJoinTable).Select("product_id").Where("category_id = ?", filter.CategoryID))
	}
	query = applyLikeSearch(query, filter.Search, "title", "handle")

	return findPage[models.Product](query, filter.Page, filter.PageSize, "created_at desc", r.withRelations)
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.withRelations(r.db).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListProductAttributes 批量读取商品合集与分类
func (r *GormProductRepository) ListProductAttributes(ctx context.Context, productIDs []string) ([]servicefee.ProductAttributes, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	db := r.db.WithContext(ctx)

	var products []struct {
		ID           string
		CollectionID *string
	}
	if err := db.Model(&models.Product{}).Select("id", "collection_id").Where("id IN ?", productIDs).Scan(&products).Error; err != nil {
		return nil, err
	}

	var links []struct {
		ProductID  string
		CategoryID string
	}
	// 与 Preload("Categories") 保持一致，跳过已软删除的分类
	if err := db.Table(productCategoryJoinTable+" AS pcp").
		Select("pcp.product_id", "pcp.category_id").
		Joins("JOIN product_categories pc ON pc.id = pcp.category_id AND pc.deleted_at IS NULL").
		Where("pcp.product_id IN ?", productIDs).
		Order("pcp.category_id asc").
		Scan(&links).Error; err != nil {
		return nil, err
	}
	categories := make(map[string][]string, len(products))
	for _, link := range links {
		categories[link.ProductID] = append(categories[link.ProductID], link.CategoryID)
	}

	result := make([]servicefee.ProductAttributes, 0, len(products))
	for _, product := range products {
		attr := servicefee.ProductAttributes{
			ProductID:   product.ID,
			CategoryIDs: categories[product.ID],
		}
		if product.CollectionID != nil {
			attr.CollectionID = *product.CollectionID
		}
		result = append(result, attr)
	}
	return result, nil
}

// ListVariantProducts 批量解析规格所属商品
func (r *GormProductRepository) ListVariantProducts(ctx context.Context, variantIDs []string) (map[string]string, error) {
	result := make(map[string]string, len(variantIDs))
	if len(variantIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		ID        string
		ProductID string
	}
	if err := r.db.WithContext(ctx).Model(&models.ProductVariant{}).
		Select("id", "product_id").
		Where("id IN ?", variantIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row.ProductID
	}
	return result, nil
}
