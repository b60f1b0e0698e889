package repository

import (
	"context"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/models"
)

func TestVendorProductLinkReadersAgree(t *testing.T) {
	db := setupRepositoryTestDB(t, "vendor_link_repo")
	now := time.Now().UTC().Truncate(time.Second)

	if err := db.Create(&[]models.VendorProduct{
		{VendorID: "vendor_A", ProductID: "prod_1", CreatedAt: now},
		{VendorID: "vendor_B", ProductID: "prod_2", CreatedAt: now},
	}).Error; err != nil {
		t.Fatalf("create vendor products failed: %v", err)
	}
	if err := db.Create(&[]models.LinkRegistry{
		{FromEntity: constants.LinkEntityVendor, FromID: "vendor_A", ToEntity: constants.LinkEntityProduct, ToID: "prod_1", CreatedAt: now},
		{FromEntity: constants.LinkEntityVendor, FromID: "vendor_B", ToEntity: constants.LinkEntityProduct, ToID: "prod_2", CreatedAt: now},
		{FromEntity: constants.LinkEntityVendorGroup, FromID: "group_eu", ToEntity: constants.LinkEntityProduct, ToID: "prod_1", CreatedAt: now},
	}).Error; err != nil {
		t.Fatalf("create link registry failed: %v", err)
	}

	ctx := context.Background()
	for _, mode := range []string{constants.VendorLinkModeModule, constants.VendorLinkModeRegistry} {
		reader := NewVendorProductLinkReader(db, mode)
		links, err := reader.ListVendorProductLinks(ctx, []string{"prod_1", "prod_2", "prod_3"})
		if err != nil {
			t.Fatalf("%s: list links failed: %v", mode, err)
		}
		if len(links) != 2 {
			t.Fatalf("%s: expected 2 links, got %+v", mode, links)
		}
		owners := map[string]string{}
		for _, link := range links {
			owners[link.ProductID] = link.VendorID
		}
		if owners["prod_1"] != "vendor_A" || owners["prod_2"] != "vendor_B" {
			t.Fatalf("%s: unexpected owners %v", mode, owners)
		}
	}
}

func TestVendorGroupLinkRepository(t *testing.T) {
	db := setupRepositoryTestDB(t, "vendor_group_repo")
	if err := db.Create(&[]models.VendorGroupVendor{
		{VendorGroupID: "group_eu", VendorID: "vendor_A"},
		{VendorGroupID: "group_premium", VendorID: "vendor_A"},
		{VendorGroupID: "group_us", VendorID: "vendor_C"},
	}).Error; err != nil {
		t.Fatalf("create group links failed: %v", err)
	}

	links, err := NewVendorGroupLinkRepository(db).ListVendorGroupLinks(context.Background(), []string{"vendor_A", "vendor_B"})
	if err != nil {
		t.Fatalf("list group links failed: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %+v", links)
	}
	if links[0].VendorGroupID != "group_eu" || links[1].VendorGroupID != "group_premium" {
		t.Fatalf("unexpected order: %+v", links)
	}

	empty, err := NewVendorGroupLinkRepository(db).ListVendorGroupLinks(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no lookup for empty input, got %v %v", empty, err)
	}
}
