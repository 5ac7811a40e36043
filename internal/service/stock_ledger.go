package service

import (
	"errors"

	"go-farmpet-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockLedger is the only writer of medication stock. Every call runs inside the caller's
// unit of work and moves exactly one medication's counter.
type StockLedger struct {
	medications repository.MedicationRepository
}

func NewStockLedger(medications repository.MedicationRepository) *StockLedger {
	return &StockLedger{medications: medications}
}

// Reserve takes quantity units out of stock. The check and the decrement are one
// conditional UPDATE, so concurrent reservations can never drive stock below zero.
func (l *StockLedger) Reserve(tx *gorm.DB, medicationID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	ok, err := l.medications.DecrementStock(tx, medicationID, quantity)
	if err != nil {
		return persistence("reserve stock", err)
	}
	if ok {
		return nil
	}

	// Nothing matched: tell a missing medication apart from a short one.
	medication, err := l.medications.Lookup(tx, medicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: EntityMedication, ID: medicationID}
		}
		return persistence("reserve stock", err)
	}
	return &InsufficientStockError{
		MedicationID: medicationID,
		Requested:    quantity,
		Available:    medication.Stock,
	}
}

// Release puts quantity units back into stock.
func (l *StockLedger) Release(tx *gorm.DB, medicationID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	ok, err := l.medications.IncrementStock(tx, medicationID, quantity)
	if err != nil {
		return persistence("release stock", err)
	}
	if !ok {
		return &NotFoundError{Entity: EntityMedication, ID: medicationID}
	}
	return nil
}

// Adjust applies a signed stock change: positive releases, negative reserves.
func (l *StockLedger) Adjust(tx *gorm.DB, medicationID uuid.UUID, delta int) error {
	switch {
	case delta > 0:
		return l.Release(tx, medicationID, delta)
	case delta < 0:
		return l.Reserve(tx, medicationID, -delta)
	default:
		return nil
	}
}
