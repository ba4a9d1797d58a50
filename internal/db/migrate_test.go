package db

import (
	"fmt"
	"testing"

	"github.com/buildsmart/invoicedesk/internal/models"
)

func TestMigrateIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := Migrate(gdb); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if !gdb.Migrator().HasTable(&models.Invoice{}) {
		t.Fatal("invoices table missing after migrate")
	}
}

func TestMigrateAddsColumnsToOldStore(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// Shape of the table as the first release created it, before the
	// date, client and tax-rate columns existed.
	oldSchema := `CREATE TABLE invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_number TEXT UNIQUE,
		client_name TEXT,
		description TEXT,
		items TEXT,
		subtotal REAL,
		tax REAL,
		total REAL,
		email TEXT,
		company_name TEXT,
		company_address TEXT,
		company_contact TEXT
	)`
	if err := gdb.Exec(oldSchema).Error; err != nil {
		t.Fatalf("create old schema: %v", err)
	}
	if err := gdb.Exec(
		`INSERT INTO invoices (invoice_number, client_name, description, items, subtotal, tax, total) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"INV-OLD", "Acme Corp", "Legacy job", `[{"description":"Labor","quantity":1,"unit_price":100}]`, 100, 0, 100,
	).Error; err != nil {
		t.Fatalf("seed old row: %v", err)
	}

	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate old store: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("re-migrate old store: %v", err)
	}

	m := gdb.Migrator()
	for _, col := range []string{"date_added", "date", "client_address", "client_number", "tax_rate"} {
		if !m.HasColumn(&models.Invoice{}, col) {
			t.Errorf("column %s missing after migrate", col)
		}
	}

	// Existing rows and values survive the migration.
	var inv models.Invoice
	if err := gdb.Where("invoice_number = ?", "INV-OLD").First(&inv).Error; err != nil {
		t.Fatalf("read migrated row: %v", err)
	}
	if inv.ClientName != "Acme Corp" || inv.Total != 100 {
		t.Errorf("migrated row = %q/%f, want Acme Corp/100", inv.ClientName, inv.Total)
	}
}
