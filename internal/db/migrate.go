package db

import (
	"fmt"

	"github.com/buildsmart/invoicedesk/internal/models"
	"gorm.io/gorm"
)

// addedColumns lists columns introduced after the first release, in the
// order they appeared. Migration is keyed by column presence, not by a
// version counter: each column is added only if the table does not have
// it yet, so running the migration on every start is safe.
var addedColumns = []string{
	"date_added",
	"date",
	"client_address",
	"client_number",
	"tax_rate",
}

// Migrate ensures the invoices table exists with the full current column
// set. A store created by an older release keeps all its rows; missing
// columns are added one by one.
func Migrate(gdb *gorm.DB) error {
	m := gdb.Migrator()

	if !m.HasTable(&models.Invoice{}) {
		if err := m.CreateTable(&models.Invoice{}); err != nil {
			return fmt.Errorf("create invoices table: %w", err)
		}
		return nil
	}

	for _, col := range addedColumns {
		if m.HasColumn(&models.Invoice{}, col) {
			continue
		}
		if err := m.AddColumn(&models.Invoice{}, col); err != nil {
			return fmt.Errorf("add column %s: %w", col, err)
		}
	}
	return nil
}
