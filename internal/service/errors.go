package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors, match with errors.Is
var (
	ErrNotFound             = errors.New("not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrInvalidAmount        = errors.New("discount and freight cannot be negative")
	ErrInvalidPaymentConfig = errors.New("invalid payment method")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrConflict             = errors.New("already exists")
	ErrPersistence          = errors.New("persistence failure")
)

type EntityKind string

const (
	EntityClient     EntityKind = "client"
	EntityMedication EntityKind = "medication"
	EntityPet        EntityKind = "pet"
	EntityPurchase   EntityKind = "purchase"
)

// NotFoundError names the missing entity.
type NotFoundError struct {
	Entity EntityKind
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

type InsufficientStockError struct {
	MedicationID uuid.UUID
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medication %s: requested %d, available %d",
		e.MedicationID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// PersistenceError wraps a storage failure. It matches ErrPersistence and unwraps to the
// driver error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound reports whether err is about a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClientError reports whether err was caused by the request itself.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidPaymentConfig) ||
		errors.Is(err, ErrInvalidRequest)
}
