package models

import "gorm.io/datatypes"

// High-side catalog: type -> subtype -> model (per brand) -> variant.

type AcType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type AcSubType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	AcTypeID    uint   `json:"ac_type_id" gorm:"not null;index"`
	AcType      AcType `json:"ac_type" gorm:"foreignKey:AcTypeID;constraint:OnDelete:CASCADE"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type Brand struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type ProductModel struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AcSubTypeID uint      `json:"ac_sub_type_id" gorm:"not null;index"`
	AcSubType   AcSubType `json:"ac_sub_type" gorm:"foreignKey:AcSubTypeID;constraint:OnDelete:RESTRICT"`
	BrandID     uint      `json:"brand_id" gorm:"not null;index"`
	Brand       Brand     `json:"brand" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`

	Name     string `json:"name" gorm:"size:200;not null"`
	ModelNo  string `json:"model_no" gorm:"size:100;not null"`
	Inverter bool   `json:"inverter"`
	Phase    string `json:"phase" gorm:"size:20"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type ProductVariant struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	ProductModelID uint         `json:"product_model" gorm:"not null;index"`
	ProductModel   ProductModel `json:"product_model_details" gorm:"foreignKey:ProductModelID;constraint:OnDelete:RESTRICT"`

	// SKU is generated from the model number and the row id once the row
	// exists; unique for the variant's lifetime.
	SKU      string `json:"sku" gorm:"size:100;uniqueIndex"`
	Capacity string `json:"capacity" gorm:"size:100"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type ProductInventory struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	ProductVariantID uint           `json:"product_variant" gorm:"not null;index"`
	ProductVariant   ProductVariant `json:"product_variant_details" gorm:"foreignKey:ProductVariantID;constraint:OnDelete:RESTRICT"`

	SerialNo     string          `json:"serial_no" gorm:"size:100;uniqueIndex"`
	PurchaseDate *datatypes.Date `json:"purchase_date"`
	Status       string          `json:"status" gorm:"size:50;index"`
}
