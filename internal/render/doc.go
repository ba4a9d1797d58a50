// Package render produces the two presentation surfaces of an invoice:
// an HTML preview and a printable PDF. Both are fed from the same
// Document, built once per invoice, so they cannot diverge on item rows
// or computed figures.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/buildsmart/invoicedesk/internal/models"
)

// Row is one itemized line with all values already formatted for display.
type Row struct {
	Description string
	Qty         string
	Rate        string
	Amount      string
}

// Document is the shared presentation model for one invoice.
type Document struct {
	CompanyName    string
	Tagline        string
	CompanyAddress string
	CompanyContact string

	Number string
	Date   string

	ClientName    string
	ClientAddress string
	ClientNumber  string
	Email         string

	Description string

	Rows     []Row
	Subtotal string
	Tax      string
	Total    string
}

// BuildDocument formats an invoice for rendering. All monetary figures
// are fixed to two decimals here and nowhere else.
func BuildDocument(inv *models.Invoice, tagline string) Document {
	rows := make([]Row, 0, len(inv.Items))
	for _, it := range inv.Items {
		rows = append(rows, Row{
			Description: it.Description,
			Qty:         formatQty(it.Quantity),
			Rate:        money(it.UnitPrice),
			Amount:      money(it.Amount()),
		})
	}
	return Document{
		CompanyName:    inv.CompanyName,
		Tagline:        tagline,
		CompanyAddress: inv.CompanyAddress,
		CompanyContact: inv.CompanyContact,
		Number:         inv.InvoiceNumber,
		Date:           inv.Date,
		ClientName:     inv.ClientName,
		ClientAddress:  inv.ClientAddress,
		ClientNumber:   inv.ClientNumber,
		Email:          inv.Email,
		Description:    inv.Description,
		Rows:           rows,
		Subtotal:       money(inv.Subtotal),
		Tax:            money(inv.Tax),
		Total:          money(inv.Total),
	}
}

// DocumentFileName names an export deterministically from the invoice
// number. Preview-triggered exports get a distinct suffix so they never
// overwrite a direct export of the same invoice.
func DocumentFileName(number string, fromPreview bool) string {
	safe := strings.NewReplacer("/", "-", "\\", "-").Replace(number)
	if fromPreview {
		return fmt.Sprintf("invoice_%s_preview.pdf", safe)
	}
	return fmt.Sprintf("invoice_%s.pdf", safe)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatQty prints quantities without trailing zeros ("10", "2.5").
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
