package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Lead sources and statuses are stored as plain strings; these are the
// fixed values the UI offers. A free-form source is accepted as "other".
const (
	LeadStatusOpen      = "open"
	LeadStatusInProcess = "in_process"
	LeadStatusClosed    = "closed"
)

var FixedLeadSources = []string{
	"google_ads", "indiamart", "bni", "justdial", "reference",
	"architect/interior_designe", "builder", "existing_customer",
	"ka_staff", "other",
}

type Lead struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CustomerID uint     `json:"customer_id" gorm:"not null"`
	Customer   Customer `json:"customer" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`

	RequirementsDetails string `json:"requirements_details"`
	HvacApplication     string `json:"hvac_application" gorm:"size:200"`
	CapacityRequired    string `json:"capacity_required" gorm:"size:200"`
	LeadSource          string `json:"lead_source" gorm:"size:200;not null"`
	LeadSourceInput     string `json:"lead_source_input" gorm:"size:200"`
	Status              string `json:"status" gorm:"size:200;not null;index"`
	LeadType            string `json:"lead_type" gorm:"size:100"`
	IsServiceLead       bool   `json:"is_service_lead"`
	ProjectName         string `json:"project_name" gorm:"size:255"`
	ProjectAddress      string `json:"project_address"`

	AssignToID    *uint `json:"assign_to" gorm:"index"`
	AssignTo      *User `json:"assign_to_details" gorm:"foreignKey:AssignToID;constraint:OnDelete:SET NULL"`
	CreatedByID   *uint `json:"created_by"`
	CreatedBy     *User `json:"created_by_details" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	ReferenceByID *uint `json:"reference_by"`
	ReferenceBy   *User `json:"reference_by_details" gorm:"foreignKey:ReferenceByID;constraint:OnDelete:SET NULL"`

	Date         *datatypes.Date `json:"date"`
	EnquiryDate  *datatypes.Date `json:"enquiry_date"`
	FollowupDate *datatypes.Date `json:"followup_date" gorm:"index"`
	Remarks      string          `json:"remarks"`

	Products  []LeadProduct  `json:"product_details" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	FollowUps []LeadFollowUp `json:"followups" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// LeadProduct is the lead's current product interest, kept in sync with
// the products of the latest follow-up.
type LeadProduct struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	LeadID uint `json:"-" gorm:"index;not null"`

	AcTypeID       *uint `json:"ac_type"`
	AcSubTypeID    *uint `json:"ac_sub_type"`
	BrandID        *uint `json:"brand"`
	ProductModelID *uint `json:"product_model"`
	VariantID      *uint `json:"variant"`

	Quantity      *int             `json:"quantity"`
	ExpectedPrice *decimal.Decimal `json:"expected_price" gorm:"type:numeric(12,2)"`
	Remarks       string           `json:"remarks"`
}

type LeadFollowUp struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	LeadID uint `json:"lead" gorm:"index;not null"`
	Lead   Lead `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`

	FollowupDate     *datatypes.Date `json:"followup_date"`
	NextFollowupDate *datatypes.Date `json:"next_followup_date"`
	Remarks          string          `json:"remarks"`
	Status           string          `json:"status" gorm:"size:200"`

	CreatedByID *uint     `json:"created_by"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`

	FAQAnswers []LeadFollowUpFAQAnswer `json:"faq_answers" gorm:"foreignKey:FollowUpID;constraint:OnDelete:CASCADE"`
	Products   []LeadFollowUpProduct   `json:"product_details" gorm:"foreignKey:FollowUpID;constraint:OnDelete:CASCADE"`
}

// LeadFAQ is a question template answered during follow-ups.
type LeadFAQ struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Question  string `json:"question" gorm:"not null"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	SortOrder int    `json:"sort_order"`
}

// LeadFollowUpFAQAnswer snapshots the answer given to one FAQ on one
// follow-up. Deleting the follow-up cascades its answers.
type LeadFollowUpFAQAnswer struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	FollowUpID uint    `json:"-" gorm:"index;not null"`
	FAQID      uint    `json:"faq" gorm:"not null"`
	FAQ        LeadFAQ `json:"-" gorm:"foreignKey:FAQID;constraint:OnDelete:CASCADE"`
	Answer     string  `json:"answer"`
}

// LeadFollowUpProduct is the per-follow-up snapshot of product interest.
type LeadFollowUpProduct struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	FollowUpID uint `json:"-" gorm:"index;not null"`

	AcTypeID       *uint `json:"ac_type"`
	AcSubTypeID    *uint `json:"ac_sub_type"`
	BrandID        *uint `json:"brand"`
	ProductModelID *uint `json:"product_model"`
	VariantID      *uint `json:"variant"`

	Quantity      *int             `json:"quantity"`
	ExpectedPrice *decimal.Decimal `json:"expected_price" gorm:"type:numeric(12,2)"`
	Remarks       string           `json:"remarks"`
}
