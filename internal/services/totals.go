package services

import (
	"strconv"
	"strings"

	"github.com/buildsmart/invoicedesk/internal/models"
)

// ComputeTotals derives the valid line items and money figures from raw
// item rows and a tax-rate string.
//
// Rows missing a value, or whose quantity or unit price does not parse as
// a number, are dropped from both the returned items and the totals. The
// caller is typically mid-edit, so a half-filled row is not an error.
// ComputeTotals never fails; an all-invalid input simply yields no items.
// Arithmetic runs at full float precision, rounding happens only when a
// figure is rendered.
func ComputeTotals(rows []models.ItemDraft, taxRate string) (items []models.LineItem, subtotal, tax, total float64) {
	for _, row := range rows {
		desc := strings.TrimSpace(row.Description)
		qtyText := strings.TrimSpace(row.Quantity)
		priceText := strings.TrimSpace(row.UnitPrice)
		if desc == "" || qtyText == "" || priceText == "" {
			continue
		}
		qty, err := strconv.ParseFloat(qtyText, 64)
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			continue
		}
		item := models.LineItem{Description: desc, Quantity: qty, UnitPrice: price}
		subtotal += item.Amount()
		items = append(items, item)
	}

	tax = subtotal * (ParseTaxRate(taxRate) / 100)
	total = subtotal + tax
	return items, subtotal, tax, total
}

// ParseTaxRate reads a tax-rate percentage from text. Blank or unparsable
// input means 0; it never fails.
func ParseTaxRate(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return rate
}
