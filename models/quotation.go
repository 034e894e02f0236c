package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is the immutable-identity parent; commercial terms live on
// its versions. Created once, deleted only when its last version goes.
type Quotation struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	QuotationNo string `json:"quotation_no" gorm:"size:50;unique;not null"`

	CustomerID uint     `json:"customer" gorm:"not null;index"`
	Customer   Customer `json:"customer_details" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`

	Subject      string `json:"subject" gorm:"size:255;not null"`
	SiteName     string `json:"site_name" gorm:"size:255"`
	ThankYouNote string `json:"thank_you_note"`

	Versions []QuotationVersion `json:"versions" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}

// QuotationVersion is one revision of a quotation's commercial terms.
// At most one version per quotation is active; superseded versions are
// immutable.
type QuotationVersion struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	QuotationID uint `json:"quotation_id" gorm:"index:idx_quotation_versions_no,unique,priority:1;not null"`

	VersionNo string `json:"version_no" gorm:"size:100;index:idx_quotation_versions_no,unique,priority:2;not null"`
	IsActive  bool   `json:"is_active" gorm:"not null;default:true;index"`

	GSTType string `json:"gst_type" gorm:"size:20;not null;default:CGST_SGST"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:numeric(12,2)"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount" gorm:"type:numeric(12,2)"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount" gorm:"type:numeric(12,2)"`
	IGSTAmount  decimal.Decimal `json:"igst_amount" gorm:"type:numeric(12,2)"`
	GSTAmount   decimal.Decimal `json:"gst_amount" gorm:"type:numeric(12,2)"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(12,2)"`
	GrandTotal  decimal.Decimal `json:"grand_total" gorm:"type:numeric(12,2)"`

	HighSideItems []QuotationHighSideItem `json:"high_side_items" gorm:"foreignKey:QuotationVersionID;constraint:OnDelete:CASCADE"`
	LowSideItems  []QuotationLowSideItem  `json:"low_side_items" gorm:"foreignKey:QuotationVersionID;constraint:OnDelete:CASCADE"`

	CreatedByID *uint     `json:"created_by"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuotationHighSideItem is an AC equipment line priced off a catalog
// variant, with flat mathadi/transport surcharges outside the GST base.
type QuotationHighSideItem struct {
	ID                 uint `json:"id" gorm:"primaryKey"`
	QuotationVersionID uint `json:"-" gorm:"index;not null"`

	ProductVariantID uint           `json:"product_variant" gorm:"not null"`
	ProductVariant   ProductVariant `json:"product_variant_details" gorm:"foreignKey:ProductVariantID;constraint:OnDelete:RESTRICT"`

	Quantity   decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2)"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2)"`
	GSTPercent decimal.Decimal `json:"gst_percent" gorm:"type:numeric(5,2);default:18"`

	MathadiCharges        decimal.Decimal `json:"mathadi_charges" gorm:"type:numeric(10,2)"`
	TransportationCharges decimal.Decimal `json:"transportation_charges" gorm:"type:numeric(10,2)"`

	BaseAmount   decimal.Decimal `json:"base_amount" gorm:"type:numeric(12,2)"`
	GSTAmount    decimal.Decimal `json:"gst_amount" gorm:"type:numeric(12,2)"`
	TotalWithGST decimal.Decimal `json:"total_with_gst" gorm:"type:numeric(12,2)"`
}

// QuotationLowSideItem is an installation-material line priced off a
// parts catalog item.
type QuotationLowSideItem struct {
	ID                 uint `json:"id" gorm:"primaryKey"`
	QuotationVersionID uint `json:"-" gorm:"index;not null"`

	ItemID uint `json:"item" gorm:"not null"`
	Item   Item `json:"item_details" gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`

	Quantity   decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2)"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2)"`
	GSTPercent decimal.Decimal `json:"gst_percent" gorm:"type:numeric(5,2)"`

	MathadiCharges decimal.Decimal `json:"mathadi_charges" gorm:"type:numeric(10,2)"`

	BaseAmount   decimal.Decimal `json:"base_amount" gorm:"type:numeric(12,2)"`
	GSTAmount    decimal.Decimal `json:"gst_amount" gorm:"type:numeric(12,2)"`
	TotalWithGST decimal.Decimal `json:"total_with_gst" gorm:"type:numeric(12,2)"`
}
