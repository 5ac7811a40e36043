package service

import (
	"context"
	"errors"

	"go-farmpet-api/internal/model"
	"go-farmpet-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WarningNegativeTotal flags a purchase whose discount exceeds price*quantity+freight.
// The purchase is still recorded.
const WarningNegativeTotal = "negative_total"

type PurchaseService interface {
	CreatePurchase(ctx context.Context, req *PurchaseRequest) (*PurchaseResult, error)
	UpdatePurchase(ctx context.Context, id uuid.UUID, req *PurchaseRequest) (*PurchaseResult, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	ListPurchases() ([]model.Purchase, error)
	GetPurchase(id uuid.UUID) (*model.Purchase, error)
}

type PurchaseResult struct {
	PurchaseID uuid.UUID       `json:"purchase_id"`
	Total      decimal.Decimal `json:"total"`
	Warnings   []string        `json:"warnings,omitempty"`
}

type DeleteResult struct {
	PurchaseID       uuid.UUID `json:"purchase_id"`
	RestoredQuantity int       `json:"restored_quantity"`
}

// EventPublisher receives a payload after every committed purchase change. Publish is called
// on the request path and must not block (ws.Hub drops messages when its queue is full).
type EventPublisher interface {
	Publish(payload interface{})
}

type purchaseService struct {
	uow         repository.UnitOfWork
	purchases   repository.PurchaseRepository
	medications repository.MedicationRepository
	validator   *PurchaseValidator
	ledger      *StockLedger
	events      EventPublisher
	log         zerolog.Logger
}

func NewPurchaseService(
	uow repository.UnitOfWork,
	purchases repository.PurchaseRepository,
	clients repository.ClientRepository,
	medications repository.MedicationRepository,
	pets repository.PetRepository,
	events EventPublisher,
	log zerolog.Logger,
) PurchaseService {
	return &purchaseService{
		uow:         uow,
		purchases:   purchases,
		medications: medications,
		validator:   NewPurchaseValidator(clients, medications, pets),
		ledger:      NewStockLedger(medications),
		events:      events,
		log:         log.With().Str("component", "purchase_service").Logger(),
	}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req *PurchaseRequest) (*PurchaseResult, error) {
	op := newOperation("create", s.log)
	var purchase *model.Purchase

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		// 1. Validate
		medication, err := s.validator.Validate(tx, req, 0)
		if err != nil {
			return err
		}

		// 2. Reserve stock
		op.enter(StateStockAdjusting)
		if err := s.ledger.Reserve(tx, req.MedicationID, req.Quantity); err != nil {
			return err
		}
		op.recordStock(req.MedicationID, -req.Quantity)

		// 3. Derive + persist
		op.enter(StatePersisting)
		purchase = newPurchase(req)
		applyDerived(purchase, medication.Price)
		if err := s.purchases.Create(tx, purchase); err != nil {
			return persistence("create purchase", err)
		}
		return nil
	})
	if err := op.finish(classify(err)); err != nil {
		return nil, err
	}

	s.publish("purchase_created", purchase.ID, op)
	return s.result(purchase), nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, req *PurchaseRequest) (*PurchaseResult, error) {
	op := newOperation("update", s.log)
	var purchase *model.Purchase

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		existing, err := s.loadForUpdate(tx, id)
		if err != nil {
			return err
		}

		// 1. Validate; units already held on the same medication count as available
		reserved := 0
		if existing.MedicationID == req.MedicationID {
			reserved = existing.Quantity
		}
		medication, err := s.validator.Validate(tx, req, reserved)
		if err != nil {
			return err
		}

		// 2./3. Move stock
		op.enter(StateStockAdjusting)
		if existing.MedicationID != req.MedicationID {
			if err := s.ledger.Release(tx, existing.MedicationID, existing.Quantity); err != nil {
				return err
			}
			op.recordStock(existing.MedicationID, existing.Quantity)

			if err := s.ledger.Reserve(tx, req.MedicationID, req.Quantity); err != nil {
				return err
			}
			op.recordStock(req.MedicationID, -req.Quantity)
		} else if delta := existing.Quantity - req.Quantity; delta != 0 {
			if err := s.ledger.Adjust(tx, req.MedicationID, delta); err != nil {
				return err
			}
			op.recordStock(req.MedicationID, delta)
		}

		// 4./5. Re-derive + persist
		op.enter(StatePersisting)
		purchase = newPurchase(req)
		purchase.BaseModel = existing.BaseModel
		applyDerived(purchase, medication.Price)
		if err := s.purchases.Update(tx, purchase); err != nil {
			return persistence("update purchase", err)
		}
		return nil
	})
	if err := op.finish(classify(err)); err != nil {
		return nil, err
	}

	s.publish("purchase_updated", purchase.ID, op)
	return s.result(purchase), nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	op := newOperation("delete", s.log)
	var restored int

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		existing, err := s.loadForUpdate(tx, id)
		if err != nil {
			return err
		}

		op.enter(StateStockAdjusting)
		if err := s.ledger.Release(tx, existing.MedicationID, existing.Quantity); err != nil {
			return err
		}
		op.recordStock(existing.MedicationID, existing.Quantity)

		op.enter(StatePersisting)
		if err := s.purchases.Delete(tx, existing.ID); err != nil {
			return persistence("delete purchase", err)
		}
		restored = existing.Quantity
		return nil
	})
	if err := op.finish(classify(err)); err != nil {
		return nil, err
	}

	s.publish("purchase_deleted", id, op)
	return &DeleteResult{PurchaseID: id, RestoredQuantity: restored}, nil
}

func (s *purchaseService) ListPurchases() ([]model.Purchase, error) {
	purchases, err := s.purchases.FindAll()
	if err != nil {
		return nil, persistence("list purchases", err)
	}
	return purchases, nil
}

func (s *purchaseService) GetPurchase(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchases.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityPurchase, ID: id}
		}
		return nil, persistence("get purchase", err)
	}
	return purchase, nil
}

func (s *purchaseService) loadForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error) {
	existing, err := s.purchases.FindForUpdate(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityPurchase, ID: id}
		}
		return nil, persistence("load purchase", err)
	}
	return existing, nil
}

func (s *purchaseService) result(purchase *model.Purchase) *PurchaseResult {
	res := &PurchaseResult{PurchaseID: purchase.ID, Total: purchase.Total}
	if purchase.Total.IsNegative() {
		res.Warnings = append(res.Warnings, WarningNegativeTotal)
		s.log.Warn().
			Str("purchase_id", purchase.ID.String()).
			Str("total", purchase.Total.StringFixed(2)).
			Msg("purchase recorded with negative total")
	}
	return res
}

// publish broadcasts the change with the current stock of every medication it moved. It
// runs after commit on the caller's goroutine; the publisher itself must not block.
func (s *purchaseService) publish(action string, purchaseID uuid.UUID, op *operation) {
	if s.events == nil {
		return
	}

	touched := op.touched()
	stock := make([]map[string]interface{}, 0, len(touched))
	for _, id := range touched {
		medication, err := s.medications.FindByID(id)
		if err != nil {
			s.log.Warn().Err(err).Str("medication_id", id.String()).Msg("stock lookup for event failed")
			continue
		}
		stock = append(stock, map[string]interface{}{
			"id":    medication.ID,
			"name":  medication.Name,
			"stock": medication.Stock,
		})
	}

	s.events.Publish(map[string]interface{}{
		"type":        "stock_update",
		"action":      action,
		"purchase_id": purchaseID,
		"medications": stock,
	})
}

func newPurchase(req *PurchaseRequest) *model.Purchase {
	return &model.Purchase{
		ClientID:      req.ClientID,
		MedicationID:  req.MedicationID,
		PetID:         req.PetID,
		Quantity:      req.Quantity,
		Discount:      req.Discount.Decimal,
		Freight:       req.Freight.Decimal,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
	}
}

// classify leaves domain errors alone and turns anything else (commit failure, context
// cancellation) into a persistence error.
func classify(err error) error {
	if err == nil || IsNotFound(err) || IsClientError(err) || errors.Is(err, ErrPersistence) {
		return err
	}
	return persistence("commit", err)
}
