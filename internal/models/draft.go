package models

// ItemDraft is one line-item row exactly as the caller captured it.
// Quantity and unit price arrive as text; the totals calculator decides
// which rows parse into valid line items.
type ItemDraft struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// InvoiceDraft is the payload a caller submits to create or update an
// invoice. All fields are raw text; validation and total derivation
// happen in the service layer.
type InvoiceDraft struct {
	InvoiceNumber string `json:"invoice_number"`
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address,omitempty"`
	ClientNumber  string `json:"client_number,omitempty"`
	Description   string `json:"description"`
	Email         string `json:"email,omitempty"`
	Date          string `json:"date,omitempty"`
	TaxRate       string `json:"tax_rate,omitempty"`

	CompanyName    string `json:"company_name,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	CompanyContact string `json:"company_contact,omitempty"`

	Items []ItemDraft `json:"items"`
}
