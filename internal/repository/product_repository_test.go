package repository

import (
	"context"
	"testing"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestProductRepositoryAttributesAndVariants(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_repo")
	repo := NewProductRepository(db)

	shoes := models.Category{ID: "cat_shoes", Handle: "shoes", Name: "Shoes"}
	sale := models.Category{ID: "cat_sale", Handle: "sale", Name: "Sale"}
	collection := models.Collection{ID: "col_summer", Handle: "summer", Title: "Summer"}
	if err := db.Create(&shoes).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&collection).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}

	product := models.Product{
		ID:           "prod_sneaker",
		Handle:       "sneaker",
		Title:        "Sneaker",
		Status:       constants.ProductStatusPublished,
		CollectionID: &collection.ID,
		Categories:   []models.Category{shoes, sale},
		Variants: []models.ProductVariant{
			{ID: "var_small", Title: "S", PriceAmount: models.NewNullMoney(decimal.NewFromInt(100))},
		},
	}
	plain := models.Product{ID: "prod_plain", Handle: "plain", Title: "Plain", Status: constants.ProductStatusDraft}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&plain).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	ctx := context.Background()
	attrs, err := repo.ListProductAttributes(ctx, []string{"prod_sneaker", "prod_plain", "prod_missing"})
	if err != nil {
		t.Fatalf("list attributes failed: %v", err)
	}
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attribute rows, got %+v", attrs)
	}
	byID := map[string]int{}
	for i, attr := range attrs {
		byID[attr.ProductID] = i
	}
	sneaker := attrs[byID["prod_sneaker"]]
	if sneaker.CollectionID != "col_summer" || len(sneaker.CategoryIDs) != 2 {
		t.Fatalf("unexpected sneaker attributes: %+v", sneaker)
	}
	if got := attrs[byID["prod_plain"]]; got.CollectionID != "" || len(got.CategoryIDs) != 0 {
		t.Fatalf("unexpected plain attributes: %+v", got)
	}

	mapping, err := repo.ListVariantProducts(ctx, []string{"var_small", "var_missing"})
	if err != nil {
		t.Fatalf("list variant products failed: %v", err)
	}
	if mapping["var_small"] != "prod_sneaker" || len(mapping) != 1 {
		t.Fatalf("unexpected variant mapping: %v", mapping)
	}

	list, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true, CategoryID: "cat_shoes"})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || len(list) != 1 || len(list[0].Variants) != 1 || len(list[0].Categories) != 2 {
		t.Fatalf("unexpected product list: total=%d %+v", total, list)
	}
}

func TestProductRepositoryAttributesSkipDeletedCategories(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_repo_deleted_category")
	repo := NewProductRepository(db)

	shoes := models.Category{ID: "cat_shoes", Handle: "shoes", Name: "Shoes"}
	sale := models.Category{ID: "cat_sale", Handle: "sale", Name: "Sale"}
	product := models.Product{
		ID:         "prod_sneaker",
		Handle:     "sneaker",
		Title:      "Sneaker",
		Status:     constants.ProductStatusPublished,
		Categories: []models.Category{shoes, sale},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Delete(&models.Category{}, "id = ?", "cat_sale").Error; err != nil {
		t.Fatalf("soft delete category failed: %v", err)
	}

	attrs, err := repo.ListProductAttributes(context.Background(), []string{"prod_sneaker"})
	if err != nil {
		t.Fatalf("list attributes failed: %v", err)
	}
	if len(attrs) != 1 || len(attrs[0].CategoryIDs) != 1 || attrs[0].CategoryIDs[0] != "cat_shoes" {
		t.Fatalf("deleted category should be skipped: %+v", attrs)
	}

	loaded, err := repo.GetByID("prod_sneaker")
	if err != nil || loaded == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if ids := loaded.CategoryIDs(); len(ids) != 1 || ids[0] != "cat_shoes" {
		t.Fatalf("preloaded categories should match attribute read: %v", ids)
	}
}
