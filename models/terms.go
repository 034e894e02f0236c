package models

type TermsConditionType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:200;not null;unique"`
}

type TermsCondition struct {
	ID     uint               `json:"id" gorm:"primaryKey"`
	TypeID uint               `json:"type_id" gorm:"not null;index"`
	Type   TermsConditionType `json:"type" gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	Text   string             `json:"text" gorm:"not null"`
}
