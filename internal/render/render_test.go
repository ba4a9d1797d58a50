package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildsmart/invoicedesk/internal/models"
)

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		InvoiceNumber:  "INV-001",
		ClientName:     "Acme Corp",
		ClientAddress:  "42 Factory Rd",
		Description:    "Warehouse renovation",
		Email:          "billing@acme.example",
		Date:           "2025-06-01",
		Subtotal:       600,
		Tax:            78,
		Total:          678,
		CompanyName:    "BuildSmart Construction Inc.",
		CompanyAddress: "123 Innovation Blvd, Suite 500",
		CompanyContact: "Toronto, ON M1X 1A1",
		Items: []models.LineItem{
			{Description: "Labor", Quantity: 10, UnitPrice: 50},
			{Description: "Materials", Quantity: 5, UnitPrice: 20},
		},
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), "Experts in earning trusts")

	if len(doc.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(doc.Rows))
	}
	want := []Row{
		{Description: "Labor", Qty: "10", Rate: "$50.00", Amount: "$500.00"},
		{Description: "Materials", Qty: "5", Rate: "$20.00", Amount: "$100.00"},
	}
	for i, row := range want {
		if doc.Rows[i] != row {
			t.Errorf("row %d = %+v, want %+v", i, doc.Rows[i], row)
		}
	}
	if doc.Subtotal != "$600.00" || doc.Tax != "$78.00" || doc.Total != "$678.00" {
		t.Errorf("totals = %s/%s/%s, want $600.00/$78.00/$678.00", doc.Subtotal, doc.Tax, doc.Total)
	}
}

func TestPreviewContainsAllFigures(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), "Experts in earning trusts")
	markup, err := Preview(doc)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	wants := []string{
		"BuildSmart Construction Inc.",
		"Experts in earning trusts",
		"INVOICE:", "INV-001",
		"2025-06-01",
		"Acme Corp", "42 Factory Rd", "billing@acme.example",
		"Warehouse renovation",
		"Labor", "Materials",
		"$50.00", "$500.00", "$20.00", "$100.00",
		"$600.00", "$78.00", "$678.00",
		"THANK YOU FOR YOUR BUSINESS!",
	}
	for _, want := range wants {
		if !strings.Contains(markup, want) {
			t.Errorf("preview missing %q", want)
		}
	}

	// Each document row appears exactly once.
	if strings.Count(markup, "Labor") != 1 {
		t.Errorf("Labor row duplicated in preview")
	}
}

func TestPreviewOmitsEmptyOptionalLines(t *testing.T) {
	inv := sampleInvoice()
	inv.ClientAddress = ""
	inv.ClientNumber = ""
	markup, err := Preview(BuildDocument(inv, ""))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if strings.Contains(markup, "42 Factory Rd") {
		t.Error("preview shows a client address that was cleared")
	}
}

func TestWritePDF(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), "Experts in earning trusts")
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDF(doc, path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("pdf file is empty")
	}
}

func TestWritePDFManyRowsPaginates(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, models.LineItem{Description: "Row", Quantity: 1, UnitPrice: 10})
	}
	doc := BuildDocument(inv, "")
	path := filepath.Join(t.TempDir(), "long.pdf")
	if err := WritePDF(doc, path); err != nil {
		t.Fatalf("write long pdf: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("long pdf not written: %v", err)
	}
}

func TestDocumentFileName(t *testing.T) {
	tests := []struct {
		number      string
		fromPreview bool
		want        string
	}{
		{"INV-001", false, "invoice_INV-001.pdf"},
		{"INV-001", true, "invoice_INV-001_preview.pdf"},
		{"2025/06-01", false, "invoice_2025-06-01.pdf"},
	}
	for _, tt := range tests {
		if got := DocumentFileName(tt.number, tt.fromPreview); got != tt.want {
			t.Errorf("DocumentFileName(%q, %v) = %q, want %q", tt.number, tt.fromPreview, got, tt.want)
		}
	}
}
