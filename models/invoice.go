package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CompanyProfile holds the seller identity snapshotted into invoices at
// creation time.
type CompanyProfile struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Address string `json:"address" gorm:"not null"`

	GSTIN string `json:"gstin" gorm:"size:50;not null"`
	PAN   string `json:"pan" gorm:"size:50;not null"`
	Email string `json:"email"`

	MsmeNumber string `json:"msme_number" gorm:"size:100"`

	BankName  string `json:"bank_name" gorm:"size:255"`
	AccountNo string `json:"account_no" gorm:"size:50"`
	IFSCCode  string `json:"ifsc_code" gorm:"size:50"`
	Branch    string `json:"branch" gorm:"size:255"`

	Declaration string `json:"declaration"`
}

// Invoice is a GST tax invoice. Unlike quotations and POs it keeps a
// single live row; updates recompute its items, breakups and totals in
// place.
type Invoice struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	InvoiceNo string `json:"invoice_no" gorm:"size:50;unique;not null"`

	CustomerID uint     `json:"customer" gorm:"not null;index"`
	Customer   Customer `json:"customer_details" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`

	InvoiceDate datatypes.Date `json:"invoice_date" gorm:"not null"`

	// Buyer snapshot
	BuyerName      string `json:"buyer_name" gorm:"size:255;not null"`
	BuyerAddress   string `json:"buyer_address" gorm:"not null"`
	BuyerGSTIN     string `json:"buyer_gstin" gorm:"size:50"`
	BuyerState     string `json:"buyer_state" gorm:"size:100"`
	BuyerStateCode string `json:"buyer_state_code" gorm:"size:10"`

	ShipToAddress string `json:"ship_to_address"`

	// Seller snapshot, copied from CompanyProfile at creation
	CompanyName       string `json:"company_name" gorm:"size:255;not null"`
	CompanyAddress    string `json:"company_address" gorm:"not null"`
	CompanyGSTIN      string `json:"company_gstin" gorm:"size:50;not null"`
	CompanyPAN        string `json:"company_pan" gorm:"size:50;not null"`
	CompanyEmail      string `json:"company_email"`
	CompanyMsmeNumber string `json:"company_msme_number" gorm:"size:100"`

	BankName  string `json:"bank_name" gorm:"size:255"`
	AccountNo string `json:"account_no" gorm:"size:50"`
	IFSCCode  string `json:"ifsc_code" gorm:"size:50"`
	Branch    string `json:"branch" gorm:"size:255"`

	Declaration string `json:"declaration"`

	DeliveryNote    string `json:"delivery_note" gorm:"size:100"`
	SupplierRef     string `json:"supplier_ref" gorm:"size:100"`
	BuyerOrderNo    string `json:"buyer_order_no" gorm:"size:100"`
	Destination     string `json:"destination" gorm:"size:255"`
	TermsOfDelivery string `json:"terms_of_delivery"`
	SiteName        string `json:"site_name" gorm:"size:255"`
	WorkDescription string `json:"work_description"`

	GSTType string `json:"gst_type" gorm:"size:20;not null"`

	TaxableValue decimal.Decimal `json:"taxable_value" gorm:"type:numeric(12,2)"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount" gorm:"type:numeric(12,2)"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount" gorm:"type:numeric(12,2)"`
	IGSTAmount   decimal.Decimal `json:"igst_amount" gorm:"type:numeric(12,2)"`
	TotalTax     decimal.Decimal `json:"total_tax" gorm:"type:numeric(12,2)"`
	GrandTotal   decimal.Decimal `json:"grand_total" gorm:"type:numeric(12,2)"`

	AmountInWords string `json:"amount_in_words"`

	Items       []InvoiceItem       `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	TaxBreakups []InvoiceTaxBreakup `json:"tax_breakups" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}

type InvoiceItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"-" gorm:"index;not null"`

	ProductVariantID *uint           `json:"product_variant"`
	ProductVariant   *ProductVariant `json:"product_variant_details" gorm:"foreignKey:ProductVariantID;constraint:OnDelete:SET NULL"`
	ItemID           *uint           `json:"item"`
	Item             *Item           `json:"item_details" gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`

	Description string `json:"description" gorm:"not null"`
	IsSection   bool   `json:"is_section"`
	HsnSac      string `json:"hsn_sac" gorm:"size:20"`
	Unit        string `json:"unit" gorm:"size:20;default:NOS"`

	GSTPercent decimal.Decimal `json:"gst_percent" gorm:"type:numeric(5,2)"`
	Quantity   decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2)"`
	Rate       decimal.Decimal `json:"rate" gorm:"type:numeric(10,2)"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
}

// InvoiceTaxBreakup is one row of the breakup-by-rate table: taxable
// value and tax amounts accumulated under a single GST percentage.
type InvoiceTaxBreakup struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	InvoiceID uint `json:"-" gorm:"index;not null"`

	TaxableValue decimal.Decimal `json:"taxable_value" gorm:"type:numeric(12,2)"`

	CGSTRate   decimal.Decimal `json:"cgst_rate" gorm:"type:numeric(5,2)"`
	CGSTAmount decimal.Decimal `json:"cgst_amount" gorm:"type:numeric(12,2)"`
	SGSTRate   decimal.Decimal `json:"sgst_rate" gorm:"type:numeric(5,2)"`
	SGSTAmount decimal.Decimal `json:"sgst_amount" gorm:"type:numeric(12,2)"`
	IGSTRate   decimal.Decimal `json:"igst_rate" gorm:"type:numeric(5,2)"`
	IGSTAmount decimal.Decimal `json:"igst_amount" gorm:"type:numeric(12,2)"`
}
