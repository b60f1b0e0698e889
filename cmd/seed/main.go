package main

import (
	"time"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.DB.Transaction(seed); err != nil {
		stdLog.Fatalf("Failed to seed demo data: %v", err)
	}
	logger.Infow("seed_completed")
}

// seed 写入演示数据，按主键幂等
func seed(tx *gorm.DB) error {
	insert := func(value interface{}) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
	}
	money := func(v int64) models.NullMoney {
		return models.NewNullMoney(decimal.NewFromInt(v))
	}
	rate := func(v string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(v))
	}

	// 分类与合集
	categories := []models.Category{
		{ID: "cat_shoes", Handle: "shoes", Name: "Shoes"},
		{ID: "cat_apparel", Handle: "apparel", Name: "Apparel"},
		{ID: "cat_gift_cards", Handle: "gift-cards", Name: "Gift Cards"},
	}
	if err := insert(&categories); err != nil {
		return err
	}
	collections := []models.Collection{
		{ID: "pcol_summer", Handle: "summer", Title: "Summer"},
	}
	if err := insert(&collections); err != nil {
		return err
	}

	// 商品与规格
	summer := "pcol_summer"
	products := []models.Product{
		{ID: "prod_runner", Handle: "runner", Title: "Runner", Status: constants.ProductStatusPublished, CollectionID: &summer},
		{ID: "prod_tee", Handle: "tee", Title: "Tee", Status: constants.ProductStatusPublished, CollectionID: &summer},
		{ID: "prod_hoodie", Handle: "hoodie", Title: "Hoodie", Status: constants.ProductStatusPublished},
		{ID: "prod_gift_card", Handle: "gift-card", Title: "Gift Card", Status: constants.ProductStatusPublished},
	}
	if err := insert(&products); err != nil {
		return err
	}
	variants := []models.ProductVariant{
		{ID: "variant_runner_42", ProductID: "prod_runner", Title: "42", SKU: "RUN-42", PriceAmount: money(12000)},
		{ID: "variant_runner_43", ProductID: "prod_runner", Title: "43", SKU: "RUN-43", PriceAmount: money(12000)},
		{ID: "variant_tee_m", ProductID: "prod_tee", Title: "M", SKU: "TEE-M", PriceAmount: money(2500)},
		{ID: "variant_hoodie_l", ProductID: "prod_hoodie", Title: "L", SKU: "HOOD-L", PriceAmount: money(6000)},
		{ID: "variant_gift_50", ProductID: "prod_gift_card", Title: "50", SKU: "GIFT-50"},
	}
	if err := insert(&variants); err != nil {
		return err
	}
	links := []map[string]interface{}{
		{"product_id": "prod_runner", "category_id": "cat_shoes"},
		{"product_id": "prod_tee", "category_id": "cat_apparel"},
		{"product_id": "prod_hoodie", "category_id": "cat_apparel"},
		{"product_id": "prod_gift_card", "category_id": "cat_gift_cards"},
	}
	for _, link := range links {
		if err := tx.Table("product_category_products").Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
			return err
		}
	}

	// 商家、分组与关联（module 与 registry 两种方式各写一份）
	vendors := []models.Vendor{
		{ID: "vendor_acme", Handle: "acme", Name: "Acme Outfitters"},
		{ID: "vendor_north", Handle: "north", Name: "North Supply"},
	}
	if err := insert(&vendors); err != nil {
		return err
	}
	groups := []models.VendorGroup{{ID: "vgroup_premium", Name: "Premium"}}
	if err := insert(&groups); err != nil {
		return err
	}
	vendorProducts := []models.VendorProduct{
		{VendorID: "vendor_acme", ProductID: "prod_hoodie"},
		{VendorID: "vendor_north", ProductID: "prod_tee"},
	}
	if err := insert(&vendorProducts); err != nil {
		return err
	}
	registry := []models.LinkRegistry{
		{ID: "link_acme_hoodie", FromEntity: constants.LinkEntityVendor, FromID: "vendor_acme", ToEntity: constants.LinkEntityProduct, ToID: "prod_hoodie"},
		{ID: "link_north_tee", FromEntity: constants.LinkEntityVendor, FromID: "vendor_north", ToEntity: constants.LinkEntityProduct, ToID: "prod_tee"},
	}
	if err := insert(&registry); err != nil {
		return err
	}
	groupMembers := []models.VendorGroupVendor{{VendorGroupID: "vgroup_premium", VendorID: "vendor_north"}}
	if err := insert(&groupMembers); err != nil {
		return err
	}

	// 三个层级的服务费
	now := time.Now().UTC()
	fees := []models.ServiceFee{
		{
			ID:            "sfee_platform",
			DisplayName:   "Platform fee",
			FeeName:       "platform_fee",
			ChargingLevel: constants.ServiceFeeLevelGlobal,
			Rate:          rate("5"),
			Status:        constants.ServiceFeeStatusActive,
		},
		{
			ID:            "sfee_footwear",
			DisplayName:   "Footwear handling",
			FeeName:       "footwear_handling",
			ChargingLevel: constants.ServiceFeeLevelItem,
			Rate:          rate("8"),
			Status:        constants.ServiceFeeStatusActive,
			EligibilityConfig: &models.ServiceFeeEligibility{
				Include:   &models.EligibilityScope{Categories: []string{"cat_shoes"}},
				Exinclude: &models.EligibilityScope{Categories: []string{"cat_gift_cards"}},
			},
		},
		{
			ID:            "sfee_acme",
			DisplayName:   "Acme marketplace fee",
			FeeName:       "acme_marketplace_fee",
			ChargingLevel: constants.ServiceFeeLevelShop,
			Rate:          rate("12.5"),
			Status:        constants.ServiceFeeStatusActive,
			EligibilityConfig: &models.ServiceFeeEligibility{
				Vendors: &models.VendorSelector{IDs: []string{"vendor_acme"}},
			},
		},
		{
			ID:            "sfee_premium",
			DisplayName:   "Premium partners",
			FeeName:       "premium_partners",
			ChargingLevel: constants.ServiceFeeLevelShop,
			Rate:          rate("3"),
			Status:        constants.ServiceFeeStatusActive,
			ValidFrom:     &now,
			EligibilityConfig: &models.ServiceFeeEligibility{
				VendorGroup: []string{"vgroup_premium"},
			},
		},
	}
	if err := insert(&fees); err != nil {
		return err
	}

	// 演示购物车与订单
	cart := models.Cart{
		ID:         "cart_demo",
		CustomerID: "cus_demo",
		Email:      "demo@example.com",
		Currency:   constants.CurrencyDefault,
		ParentAmounts: models.ParentAmounts{
			Subtotal:  money(14500),
			ItemTotal: money(14500),
			Total:     money(14500),
		},
	}
	if err := insert(&cart); err != nil {
		return err
	}
	cartItems := []models.CartItem{
		{ID: "citem_demo_runner", CartID: "cart_demo", VariantID: "variant_runner_42", Title: "Runner 42", Quantity: 1, UnitPrice: money(12000),
			LineAmounts: models.LineAmounts{Subtotal: money(12000), Total: money(12000)}},
		{ID: "citem_demo_tee", CartID: "cart_demo", ProductID: "prod_tee", VariantID: "variant_tee_m", Title: "Tee M", Quantity: 1, UnitPrice: money(2500),
			LineAmounts: models.LineAmounts{Subtotal: money(2500), Total: money(2500)}},
	}
	if err := insert(&cartItems); err != nil {
		return err
	}

	order := models.Order{
		ID:         "order_demo",
		CustomerID: "cus_demo",
		Email:      "demo@example.com",
		Currency:   constants.CurrencyDefault,
		Status:     constants.OrderStatusPending,
		ParentAmounts: models.ParentAmounts{
			Subtotal:  money(6000),
			ItemTotal: money(6000),
			Total:     money(6500),
		},
	}
	if err := insert(&order); err != nil {
		return err
	}
	orderItems := []models.OrderItem{
		{ID: "oitem_demo_hoodie", OrderID: "order_demo", ProductID: "prod_hoodie", VariantID: "variant_hoodie_l", Title: "Hoodie L", Quantity: 1, UnitPrice: money(6000),
			LineAmounts: models.LineAmounts{Subtotal: money(6000), Total: money(6000)}},
	}
	if err := insert(&orderItems); err != nil {
		return err
	}
	orderID := order.ID
	shipping := []models.ShippingMethod{
		{ID: "sm_demo_standard", OrderID: &orderID, Name: "Standard", Amount: models.NewMoneyFromDecimal(decimal.NewFromInt(500))},
	}
	return insert(&shipping)
}
