package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type OperationState string

const (
	StateValidating     OperationState = "validating"
	StateStockAdjusting OperationState = "stock_adjusting"
	StatePersisting     OperationState = "persisting"
	StateCommitted      OperationState = "committed"
	StateRolledBack     OperationState = "rolled_back"
)

func (s OperationState) terminal() bool {
	return s == StateCommitted || s == StateRolledBack
}

// stockMovement is one applied ledger call; Delta is the signed change to stock.
type stockMovement struct {
	MedicationID uuid.UUID
	Delta        int
}

// operation tracks a single purchase write through its states. The journal lists the
// stock movements applied inside the unit of work; on rollback they are undone together
// with the row write.
type operation struct {
	kind     string
	state    OperationState
	failedAt OperationState
	journal  []stockMovement
	log      zerolog.Logger
}

func newOperation(kind string, log zerolog.Logger) *operation {
	return &operation{
		kind:  kind,
		state: StateValidating,
		log:   log,
	}
}

func (o *operation) enter(state OperationState) {
	if o.state.terminal() {
		return
	}
	o.state = state
}

func (o *operation) recordStock(medicationID uuid.UUID, delta int) {
	o.journal = append(o.journal, stockMovement{MedicationID: medicationID, Delta: delta})
}

// touched returns the medications whose stock moved, in journal order, without duplicates.
func (o *operation) touched() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(o.journal))
	var ids []uuid.UUID
	for _, m := range o.journal {
		if !seen[m.MedicationID] {
			seen[m.MedicationID] = true
			ids = append(ids, m.MedicationID)
		}
	}
	return ids
}

// finish moves the operation to its terminal state and returns err unchanged.
func (o *operation) finish(err error) error {
	if o.state.terminal() {
		return err
	}

	if err == nil {
		o.state = StateCommitted
		o.log.Debug().
			Str("operation", o.kind).
			Int("stock_movements", len(o.journal)).
			Msg("purchase operation committed")
		return nil
	}

	o.failedAt = o.state
	o.state = StateRolledBack

	event := o.log.Warn()
	if IsClientError(err) || IsNotFound(err) {
		event = o.log.Info()
	}
	arr := zerolog.Arr()
	for _, m := range o.journal {
		arr.Dict(zerolog.Dict().Str("medication_id", m.MedicationID.String()).Int("reverted_delta", -m.Delta))
	}
	event.Err(err).
		Str("operation", o.kind).
		Str("failed_at", string(o.failedAt)).
		Array("compensated", arr).
		Msg("purchase operation rolled back")
	return err
}
