package repository

import (
	"errors"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	pool := &pgxpool.Pool{}

	assert.NotNil(t, NewSeatPoolRepository(pool))
	assert.NotNil(t, NewTicketRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewPassengerRepository(pool))
}

func TestNewTxManager_LockTimeoutDefault(t *testing.T) {
	m := NewTxManager(&pgxpool.Pool{}, 0)
	assert.Equal(t, "3000ms", m.lockTimeout)

	m = NewTxManager(&pgxpool.Pool{}, 250)
	assert.Equal(t, "250ms", m.lockTimeout)
}

func TestMapLockErr(t *testing.T) {
	assert.NoError(t, mapLockErr(nil))

	timeout := &pgconn.PgError{Code: pgLockNotAvailable, Message: "canceling statement due to lock timeout"}
	assert.ErrorIs(t, mapLockErr(timeout), domain.ErrLockTimeout)

	deadlock := &pgconn.PgError{Code: pgDeadlockDetected, Message: "deadlock detected"}
	assert.ErrorIs(t, mapLockErr(deadlock), domain.ErrLockTimeout)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapLockErr(other))
}
