// Package services implements the invoice operations exposed to callers:
// create, update, list, get, delete, preview rendering and PDF export.
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/buildsmart/invoicedesk/internal/config"
	"github.com/buildsmart/invoicedesk/internal/db"
	"github.com/buildsmart/invoicedesk/internal/models"
	"github.com/buildsmart/invoicedesk/internal/render"
	"github.com/buildsmart/invoicedesk/internal/validation"
)

// ValidationError reports a payload rejected before any storage or
// rendering was attempted.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return "invalid invoice: " + e.Violations.String()
}

// InvoiceService ties validation, total derivation, persistence and
// document rendering together.
type InvoiceService struct {
	repo    *db.InvoiceRepository
	company config.CompanyConfig
	outDir  string
}

func NewInvoiceService(repo *db.InvoiceRepository, company config.CompanyConfig, outDir string) *InvoiceService {
	return &InvoiceService{repo: repo, company: company, outDir: outDir}
}

// CreateInvoice validates the draft, derives totals and inserts a new
// record. db.ErrDuplicateNumber comes back unchanged so callers can
// prompt for a different number.
func (s *InvoiceService) CreateInvoice(draft models.InvoiceDraft) (*models.Invoice, error) {
	inv, err := s.buildInvoice(draft)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvoice re-derives totals from the draft and replaces all mutable
// fields of the record matching number. The invoice number itself and
// date_added never change.
func (s *InvoiceService) UpdateInvoice(number string, draft models.InvoiceDraft) (*models.Invoice, error) {
	draft.InvoiceNumber = number
	inv, err := s.buildInvoice(draft)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(number, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) GetInvoice(id uint) (*models.Invoice, error) {
	return s.repo.Get(id)
}

func (s *InvoiceService) ListInvoices(filter string) ([]models.Invoice, error) {
	return s.repo.List(filter)
}

func (s *InvoiceService) DeleteInvoice(id uint) error {
	return s.repo.Delete(id)
}

// RenderPreview renders the invoice as structured markup.
func (s *InvoiceService) RenderPreview(inv *models.Invoice) (string, error) {
	return render.Preview(render.BuildDocument(inv, s.company.Tagline))
}

// ExportDocument writes the invoice PDF to the output directory and
// returns the file path. The filename is derived from the invoice number.
func (s *InvoiceService) ExportDocument(inv *models.Invoice) (string, error) {
	return s.export(inv, false)
}

// ExportPreviewDocument writes the preview-triggered PDF export. It uses
// a distinct filename pattern so it never overwrites a direct export of
// the same invoice.
func (s *InvoiceService) ExportPreviewDocument(inv *models.Invoice) (string, error) {
	return s.export(inv, true)
}

func (s *InvoiceService) export(inv *models.Invoice, fromPreview bool) (string, error) {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(s.outDir, render.DocumentFileName(inv.InvoiceNumber, fromPreview))
	doc := render.BuildDocument(inv, s.company.Tagline)
	if err := render.WritePDF(doc, path); err != nil {
		return "", err
	}
	return path, nil
}

// buildInvoice turns a draft into a persistable record: trims fields,
// checks required ones, applies company/date defaults and derives the
// totals. Nothing is persisted here.
func (s *InvoiceService) buildInvoice(draft models.InvoiceDraft) (*models.Invoice, error) {
	v := make(validation.Violations)
	validation.Required("invoice_number", draft.InvoiceNumber, v)
	validation.Required("client_name", draft.ClientName, v)
	validation.Required("description", draft.Description, v)

	items, subtotal, tax, total := ComputeTotals(draft.Items, draft.TaxRate)
	if v.Empty() && len(items) == 0 {
		v["items"] = "at_least_one_valid_item"
	}
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	inv := &models.Invoice{
		InvoiceNumber:  strings.TrimSpace(draft.InvoiceNumber),
		ClientName:     strings.TrimSpace(draft.ClientName),
		ClientAddress:  strings.TrimSpace(draft.ClientAddress),
		ClientNumber:   strings.TrimSpace(draft.ClientNumber),
		Description:    strings.TrimSpace(draft.Description),
		Email:          strings.TrimSpace(draft.Email),
		Date:           date,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		TaxRate:        ParseTaxRate(draft.TaxRate),
		CompanyName:    defaultIfBlank(draft.CompanyName, s.company.Name),
		CompanyAddress: defaultIfBlank(draft.CompanyAddress, s.company.Address),
		CompanyContact: defaultIfBlank(draft.CompanyContact, s.company.Contact),
		Items:          items,
	}
	return inv, nil
}

func defaultIfBlank(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
