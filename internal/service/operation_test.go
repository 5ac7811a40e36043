package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperation_Commit(t *testing.T) {
	var buf bytes.Buffer
	op := newOperation("create", zerolog.New(&buf).Level(zerolog.DebugLevel))
	assert.Equal(t, StateValidating, op.state)

	op.enter(StateStockAdjusting)
	op.recordStock(uuid.New(), -5)
	op.enter(StatePersisting)

	assert.NoError(t, op.finish(nil))
	assert.Equal(t, StateCommitted, op.state)
	assert.Contains(t, buf.String(), `"message":"purchase operation committed"`)

	// terminal states stick
	op.enter(StateValidating)
	assert.Equal(t, StateCommitted, op.state)
}

func TestOperation_RollbackRecordsWhereItFailed(t *testing.T) {
	var buf bytes.Buffer
	op := newOperation("update", zerolog.New(&buf))
	released, reserved := uuid.New(), uuid.New()

	op.enter(StateStockAdjusting)
	op.recordStock(released, 5)
	op.recordStock(reserved, -8)

	err := op.finish(&InsufficientStockError{MedicationID: reserved, Requested: 8, Available: 2})

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, StateRolledBack, op.state)
	assert.Equal(t, StateStockAdjusting, op.failedAt)

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"failed_at":"stock_adjusting"`)
	assert.Contains(t, out, `"reverted_delta":-5`)
	assert.Contains(t, out, `"reverted_delta":8`)
}

func TestOperation_PersistenceFailureLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	op := newOperation("delete", zerolog.New(&buf))
	op.enter(StatePersisting)

	err := op.finish(persistence("delete purchase", assert.AnError))

	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, StatePersisting, op.failedAt)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestOperation_TouchedIsDeduplicated(t *testing.T) {
	op := newOperation("update", zerolog.Nop())
	a, b := uuid.New(), uuid.New()

	op.recordStock(a, 5)
	op.recordStock(b, -5)
	op.recordStock(a, -1)

	assert.Equal(t, []uuid.UUID{a, b}, op.touched())
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.ErrorIs(t, classify(ErrInvalidQuantity), ErrInvalidQuantity)

	err := classify(assert.AnError)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, assert.AnError)
}
