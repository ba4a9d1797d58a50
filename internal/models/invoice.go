package models

// DateLayout is the storage format for the invoice date.
const DateLayout = "2006-01-02"

// TimestampLayout is the storage format for the first-persistence timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// LineItem is one billable row on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount is the line total. It is always derived, never stored.
func (it LineItem) Amount() float64 {
	return it.Quantity * it.UnitPrice
}

// Invoice is a stored invoice record.
//
// The company_* fields are a snapshot of the issuing entity taken at
// creation/edit time. Each invoice carries its own copy, so changing the
// configured company profile never alters invoices already written.
type Invoice struct {
	ID            uint   `gorm:"primaryKey"`
	InvoiceNumber string `gorm:"column:invoice_number;size:50;uniqueIndex"`
	ClientName    string `gorm:"size:255"`
	ClientAddress string `gorm:"size:500"`
	ClientNumber  string `gorm:"size:50"`
	Description   string `gorm:"type:text"`

	// ItemsRaw is the serialized line-item blob as stored. Use Items for
	// the decoded rows; the repository keeps the two in sync.
	ItemsRaw string `gorm:"column:items;type:text"`

	Subtotal float64
	Tax      float64
	Total    float64
	TaxRate  float64

	Email          string `gorm:"size:255"`
	CompanyName    string `gorm:"size:255"`
	CompanyAddress string `gorm:"size:500"`
	CompanyContact string `gorm:"size:500"`

	// DateAdded is set on first persistence and never changes afterwards.
	DateAdded string `gorm:"size:50"`
	// Date is the user-editable invoice date (YYYY-MM-DD).
	Date string `gorm:"size:50"`

	Items []LineItem `gorm:"-"`
}

// TableName keeps the table name used by earlier releases of the store.
func (Invoice) TableName() string { return "invoices" }
