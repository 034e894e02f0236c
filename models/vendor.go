package models

import "time"

type Vendor struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:200;not null" validate:"required"`
	Email          string `json:"email" gorm:"not null" validate:"required,email"`
	Mobile         string `json:"mobile" gorm:"size:15;not null" validate:"required,len=10,numeric"`
	OfficeAddress  string `json:"office_address" gorm:"not null" validate:"required"`
	GSTDetails     string `json:"gst_details" gorm:"size:15;not null" validate:"required,len=15"`
	OfficePocName  string `json:"office_poc_name" gorm:"size:100;not null" validate:"required"`
	OfficePocPhone string `json:"office_poc_phone" gorm:"size:15;not null" validate:"required,len=10,numeric"`

	CompanyType      string `json:"company_type" gorm:"size:100"`
	StoreAddress     string `json:"store_address"`
	SupplierCategory string `json:"supplier_category" gorm:"size:100"`
	PanDetails       string `json:"pan_details" gorm:"size:10" validate:"omitempty,len=10"`
	State            string `json:"state" gorm:"size:100"`
	StateCode        string `json:"state_code" gorm:"size:10"`
	StorePocName     string `json:"store_poc_name" gorm:"size:100"`
	StorePocPhone    string `json:"store_poc_phone" gorm:"size:15" validate:"omitempty,len=10,numeric"`
	Website          string `json:"website" validate:"omitempty,url"`
	BankDetails      string `json:"bank_details"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
