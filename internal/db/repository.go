package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/buildsmart/invoicedesk/internal/models"
	"gorm.io/gorm"
)

// InvoiceRepository provides CRUD over invoice records. Every method runs
// as its own scoped operation; no transaction spans calls.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts a new invoice with a fresh id and date_added set to now.
// The items blob is serialized from inv.Items. Returns ErrDuplicateNumber
// when the invoice number is already taken; nothing is written in that case.
func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	raw, err := models.EncodeItems(inv.Items)
	if err != nil {
		return err
	}
	inv.ItemsRaw = raw
	inv.ID = 0
	inv.DateAdded = time.Now().Format(models.TimestampLayout)

	if err := r.db.Create(inv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of the record matching number.
// The business key and date_added are never touched. Returns ErrNotFound
// when no record has that number. On success inv carries the stored id
// and original date_added.
func (r *InvoiceRepository) Update(number string, inv *models.Invoice) error {
	raw, err := models.EncodeItems(inv.Items)
	if err != nil {
		return err
	}
	inv.ItemsRaw = raw

	res := r.db.Model(&models.Invoice{}).
		Where("invoice_number = ?", number).
		Updates(map[string]any{
			"client_name":     inv.ClientName,
			"client_address":  inv.ClientAddress,
			"client_number":   inv.ClientNumber,
			"description":     inv.Description,
			"items":           inv.ItemsRaw,
			"subtotal":        inv.Subtotal,
			"tax":             inv.Tax,
			"total":           inv.Total,
			"tax_rate":        inv.TaxRate,
			"email":           inv.Email,
			"company_name":    inv.CompanyName,
			"company_address": inv.CompanyAddress,
			"company_contact": inv.CompanyContact,
			"date":            inv.Date,
		})
	if res.Error != nil {
		return fmt.Errorf("update invoice %s: %w", number, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	var stored models.Invoice
	if err := r.db.Where("invoice_number = ?", number).First(&stored).Error; err != nil {
		return fmt.Errorf("reload invoice %s: %w", number, err)
	}
	inv.ID = stored.ID
	inv.InvoiceNumber = stored.InvoiceNumber
	inv.DateAdded = stored.DateAdded
	return nil
}

// Get returns the full record for id, with the items blob decoded.
// A blob that no longer parses yields a *SerializationError for this one
// record; the store itself stays usable.
func (r *InvoiceRepository) Get(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}

	items, err := models.DecodeItems(inv.ItemsRaw)
	if err != nil {
		return nil, &SerializationError{InvoiceID: inv.ID, Err: err}
	}
	inv.Items = items
	return &inv, nil
}

// List returns summary records, most recently created first. A non-empty
// filter keeps only invoices whose number or client name contains it,
// case-insensitively. The items blob is left undecoded; callers that need
// rows use Get.
func (r *InvoiceRepository) List(filter string) ([]models.Invoice, error) {
	q := r.db.Order("id DESC")
	if f := strings.ToLower(strings.TrimSpace(filter)); f != "" {
		like := "%" + f + "%"
		q = q.Where("LOWER(invoice_number) LIKE ? OR LOWER(client_name) LIKE ?", like, like)
	}

	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// Delete permanently removes the record for id. There is no tombstone;
// a deleted invoice is gone. Returns ErrNotFound when id does not exist.
func (r *InvoiceRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete invoice %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
