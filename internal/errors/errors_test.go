package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataErrorUnwrap(t *testing.T) {
	err := NewDataError("trade", "t1", "lookup failed", ErrDataNotFound)

	assert.Contains(t, err.Error(), "trade")
	assert.Contains(t, err.Error(), "t1")
	assert.True(t, Is(err, ErrDataNotFound))

	var dataErr *DataError
	assert.True(t, As(err, &dataErr))
	assert.Equal(t, "t1", dataErr.ID)
}

func TestImportErrorUnwrap(t *testing.T) {
	err := NewImportError("trades.csv", 12, "bad row", ErrImportFailed)

	assert.Contains(t, err.Error(), "trades.csv:12")
	assert.True(t, Is(err, ErrImportFailed))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("timeframe", "fortnight", "unknown value")

	assert.Contains(t, err.Error(), "timeframe")
	assert.Contains(t, err.Error(), "fortnight")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestWrapPreservesChain(t *testing.T) {
	err := Wrapf(ErrDatabaseError, "saving trade %s", "t1")

	assert.True(t, Is(err, ErrDatabaseError))
	assert.Contains(t, err.Error(), "saving trade t1")
}
