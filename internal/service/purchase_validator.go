package service

import (
	"errors"
	"fmt"

	"go-farmpet-api/internal/model"
	"go-farmpet-api/internal/repository"
	"go-farmpet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseRequest carries the client-supplied fields of a purchase. Nullable fields are
// pointers or Null types; total and stored installments are always derived.
type PurchaseRequest struct {
	ClientID      uuid.UUID           `json:"client_id" validate:"uuid_required"`
	MedicationID  uuid.UUID           `json:"medication_id" validate:"uuid_required"`
	PetID         *uuid.UUID          `json:"pet_id"`
	Quantity      int                 `json:"quantity" validate:"gt=0"`
	Discount      decimal.NullDecimal `json:"discount" validate:"gte=0"`
	Freight       decimal.NullDecimal `json:"freight" validate:"gte=0"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"payment_method"`
	Installments  *int                `json:"installments"`
}

// PurchaseValidator runs the read-only checks that precede any stock mutation.
type PurchaseValidator struct {
	clients     repository.ClientRepository
	medications repository.MedicationRepository
	pets        repository.PetRepository
}

func NewPurchaseValidator(clients repository.ClientRepository, medications repository.MedicationRepository, pets repository.PetRepository) *PurchaseValidator {
	return &PurchaseValidator{
		clients:     clients,
		medications: medications,
		pets:        pets,
	}
}

// CheckShape validates the request without touching storage.
func (v *PurchaseValidator) CheckShape(req *PurchaseRequest) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		// Money is stored with two decimals; anything finer would be rounded away
		// and the stored total would no longer match its parts.
		if !wholeCents(req.Discount.Decimal) || !wholeCents(req.Freight.Decimal) {
			return fmt.Errorf("%w: at most 2 decimal places", ErrInvalidAmount)
		}
		return nil
	}

	var fallback error
	for _, e := range errs {
		switch e.Field {
		case "Quantity":
			return ErrInvalidQuantity
		case "PaymentMethod":
			return ErrInvalidPaymentConfig
		case "Discount", "Freight":
			return ErrInvalidAmount
		default:
			if fallback == nil {
				fallback = fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidRequest, e.FailedField, e.Tag)
			}
		}
	}
	return fallback
}

// Validate checks the request against current state inside tx and returns the referenced
// medication. reserved is the number of units of req.MedicationID the purchase already
// holds (non-zero only when updating a purchase on the same medication); it counts as
// available for the stock check.
func (v *PurchaseValidator) Validate(tx *gorm.DB, req *PurchaseRequest, reserved int) (*model.Medication, error) {
	if err := v.CheckShape(req); err != nil {
		return nil, err
	}

	ok, err := v.clients.Exists(tx, req.ClientID)
	if err != nil {
		return nil, persistence("lookup client", err)
	}
	if !ok {
		return nil, &NotFoundError{Entity: EntityClient, ID: req.ClientID}
	}

	medication, err := v.medications.Lookup(tx, req.MedicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityMedication, ID: req.MedicationID}
		}
		return nil, persistence("lookup medication", err)
	}

	if req.PetID != nil {
		ok, err := v.pets.Exists(tx, *req.PetID)
		if err != nil {
			return nil, persistence("lookup pet", err)
		}
		if !ok {
			return nil, &NotFoundError{Entity: EntityPet, ID: *req.PetID}
		}
	}

	if available := medication.Stock + reserved; available < req.Quantity {
		return nil, &InsufficientStockError{
			MedicationID: medication.ID,
			Requested:    req.Quantity,
			Available:    available,
		}
	}

	return medication, nil
}
