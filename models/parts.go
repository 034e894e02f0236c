package models

// Low-side catalog: spare parts and accessories, classified along four
// independent axes plus a brand, with a generated item code.

type MaterialType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type ItemType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type FeatureType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type ItemClass struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
}

type Item struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// ItemCode is generated from the row id after creation ("ITM-0042").
	ItemCode string `json:"item_code" gorm:"size:50;uniqueIndex"`

	MaterialTypeID uint         `json:"material_type_id" gorm:"not null;index"`
	MaterialType   MaterialType `json:"material_type" gorm:"foreignKey:MaterialTypeID;constraint:OnDelete:RESTRICT"`
	ItemTypeID     uint         `json:"item_type_id" gorm:"not null;index"`
	ItemType       ItemType     `json:"item_type" gorm:"foreignKey:ItemTypeID;constraint:OnDelete:RESTRICT"`
	FeatureTypeID  uint         `json:"feature_type_id" gorm:"not null;index"`
	FeatureType    FeatureType  `json:"feature_type" gorm:"foreignKey:FeatureTypeID;constraint:OnDelete:RESTRICT"`
	ItemClassID    uint         `json:"item_class_id" gorm:"not null;index"`
	ItemClass      ItemClass    `json:"item_class" gorm:"foreignKey:ItemClassID;constraint:OnDelete:RESTRICT"`
	BrandID        *uint        `json:"brand_id"`
	Brand          *Brand       `json:"brand" gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`

	Name   string `json:"name" gorm:"size:200;not null"`
	HsnSac string `json:"hsn_sac" gorm:"size:20"`
	Unit   string `json:"unit" gorm:"size:20;default:NOS"`
}
