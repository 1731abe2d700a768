package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/NovaQuest/internal/models"
)

func TestSendAndReceive(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	q := models.Query{Text: "Mars", Mode: models.ModeImageSearch}
	require.NoError(t, eb.SendToCore(SubmitQueryEvent{Query: q}))

	got := <-eb.UIToCore()
	submit, ok := got.(SubmitQueryEvent)
	require.True(t, ok)
	assert.Equal(t, q, submit.Query)

	require.NoError(t, eb.SendToUI(StateUpdateEvent{Session: models.Session{Loading: true}}))
	update := (<-eb.CoreToUI()).(StateUpdateEvent)
	assert.True(t, update.Session.Loading)
}

func TestFullChannelOpensBreaker(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	for i := 0; i < cap(eb.coreToUI); i++ {
		require.NoError(t, eb.SendToUI(StateUpdateEvent{}))
	}
	for i := 0; i < 5; i++ {
		err := eb.SendToUI(StateUpdateEvent{})
		assert.True(t, errors.Is(err, ErrCoreToUI))
	}
	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())

	err := eb.SendToUI(StateUpdateEvent{})
	assert.True(t, errors.Is(err, ErrCircuitOpen))
	assert.Len(t, reported, 6)
	assert.True(t, errors.Is(reported[0], ErrCoreToUI))
}

func TestCircuitBreakerHalfOpens(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Minute)
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestSendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(RandomRequestEvent{Mode: models.ModePictureOfDay}), ErrClosed)
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrClosed)
}
