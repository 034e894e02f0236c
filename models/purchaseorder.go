package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PurchaseOrder is one version of a purchase order. All versions share
// PurchaseOrderNo; exactly one row per number has IsCurrent set. Editing
// a PO creates the next version instead of mutating this row.
type PurchaseOrder struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	VendorID uint   `json:"vendor_id" gorm:"not null;index"`
	Vendor   Vendor `json:"vendor" gorm:"foreignKey:VendorID;constraint:OnDelete:RESTRICT"`

	Site   string `json:"site" gorm:"size:255"`
	Branch string `json:"branch" gorm:"size:100"`
	BookNo string `json:"book_no" gorm:"size:20;not null"`

	PurchaseOrderNo string `json:"purchase_order_no" gorm:"size:50;not null;index:idx_po_no_version,unique,priority:1"`
	Version         int    `json:"version" gorm:"not null;default:1;index:idx_po_no_version,unique,priority:2"`
	IsCurrent       bool   `json:"is_current" gorm:"not null;default:true;index"`

	QuotationRefNo string          `json:"quotation_ref_no" gorm:"size:100"`
	QuotationDate  *datatypes.Date `json:"quotation_date"`
	ContactName    string          `json:"contact_name" gorm:"size:100"`
	ContactNo      string          `json:"contact_no" gorm:"size:15"`

	TermsConditions []TermsCondition `json:"terms_conditions" gorm:"many2many:purchase_order_terms"`

	GSTType            string          `json:"gst_type" gorm:"size:20;not null;default:CGST_SGST"`
	Subtotal           decimal.Decimal `json:"subtotal" gorm:"type:numeric(12,2)"`
	CGSTAmount         decimal.Decimal `json:"cgst_amount" gorm:"type:numeric(12,2)"`
	SGSTAmount         decimal.Decimal `json:"sgst_amount" gorm:"type:numeric(12,2)"`
	IGSTAmount         decimal.Decimal `json:"igst_amount" gorm:"type:numeric(12,2)"`
	GSTAmount          decimal.Decimal `json:"gst_amount" gorm:"type:numeric(12,2)"`
	RoundingAdjustment decimal.Decimal `json:"rounding_adjustment" gorm:"type:numeric(12,2)"`
	GrandTotal         decimal.Decimal `json:"grand_total" gorm:"type:numeric(12,2)"`

	Products []PurchaseOrderProduct `json:"products" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`

	CreatedByID *uint     `json:"created_by"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`
}

// PurchaseOrderProduct is one line of a PO version. A line references a
// catalog variant or item, or carries a manual description; section rows
// contribute nothing to the totals.
type PurchaseOrderProduct struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	PurchaseOrderID uint `json:"-" gorm:"index;not null"`

	ProductVariantID *uint           `json:"product_variant"`
	ProductVariant   *ProductVariant `json:"product_variant_details" gorm:"foreignKey:ProductVariantID;constraint:OnDelete:RESTRICT"`
	ItemID           *uint           `json:"item"`
	Item             *Item           `json:"item_details" gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`

	Description string `json:"description"`
	IsSection   bool   `json:"is_section"`
	HsnSac      string `json:"hsn_sac" gorm:"size:20"`
	Unit        string `json:"unit" gorm:"size:20;default:NOS"`

	Quantity   decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2)"`
	Rate       decimal.Decimal `json:"rate" gorm:"type:numeric(10,2)"`
	GSTPercent decimal.Decimal `json:"gst_percent" gorm:"type:numeric(5,2)"`

	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	GSTAmount    decimal.Decimal `json:"gst_amount" gorm:"type:numeric(12,2)"`
	TotalWithGST decimal.Decimal `json:"total_with_gst" gorm:"type:numeric(12,2)"`
}
