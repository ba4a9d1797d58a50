package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Item table column widths in mm, matching the preview's proportions.
const (
	colDescription = 80.0
	colQty         = 30.0
	colRate        = 40.0
	colAmount      = 40.0
	rowHeight      = 10.0

	// pageBreakY is the Y position past which a new page starts before
	// drawing the next table row.
	pageBreakY = 260.0
)

// WritePDF lays the invoice document out as an A4 PDF and writes it to
// path. Long item tables continue on following pages with the table
// header repeated.
func WritePDF(doc Document, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(32, 100, 106)
	pdf.CellFormat(0, 10, doc.CompanyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, doc.Tagline, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(34, 34, 34)
	pdf.CellFormat(0, 6, doc.CompanyAddress, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, doc.CompanyContact, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Invoice banner
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 136, 136)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(34, 34, 34)
	pdf.CellFormat(0, 6, "INVOICE: "+doc.Number, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "DATE: "+doc.Date, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Recipient and description
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "TO: "+doc.ClientName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	if doc.ClientAddress != "" {
		pdf.CellFormat(0, 6, "Address: "+doc.ClientAddress, "", 1, "L", false, 0, "")
	}
	if doc.ClientNumber != "" {
		pdf.CellFormat(0, 6, "Number: "+doc.ClientNumber, "", 1, "L", false, 0, "")
	}
	if doc.Email != "" {
		pdf.CellFormat(0, 6, doc.Email, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "FOR: "+doc.Description, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeTableHeader(pdf)

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(34, 34, 34)
	for _, row := range doc.Rows {
		if pdf.GetY()+rowHeight > pageBreakY {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Arial", "", 12)
			pdf.SetTextColor(34, 34, 34)
		}
		pdf.CellFormat(colDescription, rowHeight, row.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, row.Qty, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colRate, rowHeight, row.Rate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, row.Amount, "1", 1, "R", false, 0, "")
	}

	// Totals block stays together with the closing line.
	if pdf.GetY()+4*rowHeight > pageBreakY {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "B", 12)
	totalsRow(pdf, "Subtotal", doc.Subtotal)
	totalsRow(pdf, "Tax", doc.Tax)
	totalsRow(pdf, "Total", doc.Total)
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(34, 34, 34)
	pdf.CellFormat(0, 10, "THANK YOU FOR YOUR BUSINESS!", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(230, 242, 242)
	pdf.SetTextColor(32, 100, 106)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(colDescription, rowHeight, "DESCRIPTION", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowHeight, "QTY", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colRate, rowHeight, "RATE", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "AMOUNT", "1", 1, "R", true, 0, "")
}

func totalsRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(colDescription+colQty+colRate, rowHeight, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(colAmount, rowHeight, value, "1", 1, "R", false, 0, "")
}
