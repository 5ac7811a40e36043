package model

import "github.com/shopspring/decimal"

type Medication struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock        int             `gorm:"not null;default:0;check:chk_medications_stock,stock >= 0" json:"stock"`
	Prescription string          `gorm:"type:varchar(255)" json:"prescription,omitempty"`
}
