package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentPix        PaymentMethod = "PIX"
	PaymentBankSlip   PaymentMethod = "BOLETO"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentPix,
	PaymentBankSlip,
	PaymentCreditCard,
	PaymentDebitCard,
}

func (p PaymentMethod) IsValid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// Purchase is a sale of one medication to a client. Total and Installments are derived
// by the service before every write; the client never supplies them.
type Purchase struct {
	BaseModel
	ClientID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"client_id"`
	Client       *Client     `json:"client,omitempty"`
	MedicationID uuid.UUID   `gorm:"type:uuid;not null;index" json:"medication_id"`
	Medication   *Medication `json:"medication,omitempty"`
	PetID        *uuid.UUID  `gorm:"type:uuid;index" json:"pet_id"`
	Pet          *Pet        `json:"pet,omitempty"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"` // Snapshot of medication price
	Discount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"discount"`
	Freight   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"freight"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	Installments  *int          `json:"installments"`
}
