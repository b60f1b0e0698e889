package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/marketfee-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ServiceFee{},
		&models.Category{},
		&models.Collection{},
		&models.Product{},
		&models.ProductVariant{},
		&models.VendorProduct{},
		&models.VendorGroupVendor{},
		&models.LinkRegistry{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingMethod{},
		&models.SnapshotOrder{},
		&models.SnapshotLineItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}
