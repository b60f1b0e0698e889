package models

import (
	"fmt"
	"testing"
	"time"
)

func TestOpenDBMigratesSchema(t *testing.T) {
	dsn := fmt.Sprintf("file:models_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := OpenDB("SQLite", dsn, DBPoolConfig{MaxOpenConns: 1}, false)
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	if err := MigrateSchema(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []string{"service_fees", "snapshot_orders", "snapshot_line_items", "link_registry"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDB("mysql", "dsn", DBPoolConfig{}, false); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}
