package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
)

type nullLogger struct{}

func (nullLogger) Info(string, ...interface{})  {}
func (nullLogger) Warn(string, ...interface{})  {}
func (nullLogger) Error(string, ...interface{}) {}

func newFlow() *bookingflow.Flow {
	return bookingflow.New(nil, nullLogger{}, time.Now())
}

func TestStore_PutGet(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)
	defer store.Close()

	flow := newFlow()
	id := store.Put(flow)
	require.NotEmpty(t, id)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, flow, got, "the store must hand out the same flow instance")

	_, err = store.Get("desconocido")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)
	defer store.Close()

	id := store.Put(newFlow())
	store.Delete(id)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10*time.Millisecond, time.Hour)
	defer store.Close()

	id := store.Put(newFlow())
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SlidingExpiry(t *testing.T) {
	store := NewStore(40*time.Millisecond, time.Hour)
	defer store.Close()

	id := store.Put(newFlow())

	// Keep touching the session past its original deadline
	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		_, err := store.Get(id)
		require.NoError(t, err)
	}
}

func TestStore_Sweep(t *testing.T) {
	store := NewStore(10*time.Millisecond, time.Hour)
	defer store.Close()

	store.Put(newFlow())
	store.Put(newFlow())
	require.Equal(t, 2, store.Len())

	store.sweep(time.Now().Add(time.Minute))
	assert.Zero(t, store.Len())
}
