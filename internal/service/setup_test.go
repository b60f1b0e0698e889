package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/servicefee"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var serviceTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceTestEnv struct {
	db           *gorm.DB
	feeRepo      *repository.GormServiceFeeRepository
	productRepo  *repository.GormProductRepository
	cartRepo     *repository.GormCartRepository
	orderRepo    *repository.GormOrderRepository
	snapshotRepo *repository.GormSnapshotRepository
	engine       *servicefee.Engine

	globalFee models.ServiceFee
	itemFee   models.ServiceFee
	shopFee   models.ServiceFee
}

func setupServiceTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(
		&models.ServiceFee{},
		&models.Category{},
		&models.Collection{},
		&models.Product{},
		&models.ProductVariant{},
		&models.VendorProduct{},
		&models.VendorGroupVendor{},
		&models.LinkRegistry{},
		&models.Cart{},
		&models.CartItem{},
		&models.ShippingMethod{},
		&models.Order{},
		&models.OrderItem{},
		&models.SnapshotOrder{},
		&models.SnapshotLineItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

// newServiceTestEnv 准备一组商品与三级服务费：
// prod_shoe 属于 cat_shoes 命中商品级 10%，prod_hat 属于 vendor_A 命中店铺级 20%，其余走全局 5%。
func newServiceTestEnv(t *testing.T, name string) *serviceTestEnv {
	t.Helper()
	db := setupServiceTestDB(t, name)
	env := &serviceTestEnv{
		db:           db,
		feeRepo:      repository.NewServiceFeeRepository(db),
		productRepo:  repository.NewProductRepository(db),
		cartRepo:     repository.NewCartRepository(db),
		orderRepo:    repository.NewOrderRepository(db),
		snapshotRepo: repository.NewSnapshotRepository(db),
	}

	shoes := models.Category{ID: "cat_shoes", Handle: "shoes", Name: "Shoes"}
	if err := db.Create(&shoes).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	products := []models.Product{
		{
			ID:         "prod_shoe",
			Handle:     "shoe",
			Title:      "Shoe",
			Status:     constants.ProductStatusPublished,
			Categories: []models.Category{shoes},
			Variants: []models.ProductVariant{
				{ID: "var_shoe", Title: "42", PriceAmount: models.NewNullMoney(decimal.NewFromInt(1000))},
			},
		},
		{
			ID:     "prod_hat",
			Handle: "hat",
			Title:  "Hat",
			Status: constants.ProductStatusPublished,
			Variants: []models.ProductVariant{
				{ID: "var_hat", Title: "M", PriceAmount: models.NewNullMoney(decimal.NewFromInt(500))},
			},
		},
		{
			ID:     "prod_draft",
			Handle: "draft",
			Title:  "Draft",
			Status: constants.ProductStatusDraft,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	if err := db.Create(&models.VendorProduct{VendorID: "vendor_A", ProductID: "prod_hat"}).Error; err != nil {
		t.Fatalf("create vendor link failed: %v", err)
	}

	env.globalFee = models.ServiceFee{
		DisplayName:   "Platform",
		FeeName:       "platform",
		ChargingLevel: constants.ServiceFeeLevelGlobal,
		Rate:          decimal.NewNullDecimal(decimal.NewFromInt(5)),
		Status:        constants.ServiceFeeStatusActive,
		CreatedAt:     serviceTestNow.Add(-72 * time.Hour),
	}
	env.itemFee = models.ServiceFee{
		DisplayName:   "Shoes",
		FeeName:       "shoes",
		ChargingLevel: constants.ServiceFeeLevelItem,
		Rate:          decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Status:        constants.ServiceFeeStatusActive,
		EligibilityConfig: &models.ServiceFeeEligibility{
			Include: &models.EligibilityScope{Categories: []string{"cat_shoes"}},
		},
		CreatedAt: serviceTestNow.Add(-48 * time.Hour),
	}
	env.shopFee = models.ServiceFee{
		DisplayName:   "Vendor A",
		FeeName:       "vendor_a",
		ChargingLevel: constants.ServiceFeeLevelShop,
		Rate:          decimal.NewNullDecimal(decimal.NewFromInt(20)),
		Status:        constants.ServiceFeeStatusActive,
		EligibilityConfig: &models.ServiceFeeEligibility{
			Vendors: &models.VendorSelector{IDs: []string{"vendor_A"}},
		},
		CreatedAt: serviceTestNow.Add(-24 * time.Hour),
	}
	for _, fee := range []*models.ServiceFee{&env.globalFee, &env.itemFee, &env.shopFee} {
		if err := env.feeRepo.Create(fee); err != nil {
			t.Fatalf("create fee failed: %v", err)
		}
	}

	env.engine = env.newEngine(env.feeRepo)
	return env
}

func (env *serviceTestEnv) newEngine(fees servicefee.FeeSource) *servicefee.Engine {
	return servicefee.NewEngine(servicefee.EngineOptions{
		Fees:         fees,
		Products:     env.productRepo,
		Variants:     env.productRepo,
		VendorLinks:  repository.NewVendorProductLinkReader(env.db, constants.VendorLinkModeModule),
		VendorGroups: repository.NewVendorGroupLinkRepository(env.db),
		Clock:        func() time.Time { return serviceTestNow },
	})
}

// createOrder 创建一笔 prod_shoe x1 (1000) + 运费 20 的订单
func (env *serviceTestEnv) createOrder(t *testing.T, customerID, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerID: customerID,
		Email:      customerID + "@example.com",
		Currency:   constants.CurrencyDefault,
		Status:     status,
		ParentAmounts: models.ParentAmounts{
			Subtotal:  models.NewNullMoney(decimal.NewFromInt(1000)),
			Total:     models.NewNullMoney(decimal.NewFromInt(1020)),
			ItemTotal: models.NewNullMoney(decimal.NewFromInt(1000)),
		},
		ShippingMethods: []models.ShippingMethod{
			{Name: "Standard", Amount: models.NewMoneyFromDecimal(decimal.NewFromInt(20))},
		},
	}
	items := []models.OrderItem{
		{
			ProductID: "prod_shoe",
			VariantID: "var_shoe",
			Title:     "Shoe",
			Quantity:  1,
			UnitPrice: models.NewNullMoney(decimal.NewFromInt(1000)),
			LineAmounts: models.LineAmounts{
				Subtotal: models.NewNullMoney(decimal.NewFromInt(1000)),
				Total:    models.NewNullMoney(decimal.NewFromInt(1000)),
			},
		},
	}
	if err := env.orderRepo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

type countingFeeSource struct {
	source servicefee.FeeSource
	calls  int
}

func (c *countingFeeSource) ListServiceFees(ctx context.Context) ([]servicefee.Fee, error) {
	c.calls++
	return c.source.ListServiceFees(ctx)
}

type failingFeeSource struct{}

func (failingFeeSource) ListServiceFees(ctx context.Context) ([]servicefee.Fee, error) {
	return nil, errors.New("fee store unavailable")
}

func mustMoney(t *testing.T, got models.NullMoney, want int64, field string) {
	t.Helper()
	if !got.Valid {
		t.Fatalf("%s: expected %d, got null", field, want)
	}
	if !got.Decimal.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s: expected %d, got %s", field, want, got.Decimal.String())
	}
}
