package events

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	got  []ReservationEvent
	done chan struct{}
}

func (r *recordingPublisher) Publish(_ context.Context, ev ReservationEvent) error {
	r.mu.Lock()
	r.got = append(r.got, ev)
	r.mu.Unlock()
	close(r.done)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func TestEncode(t *testing.T) {
	_, err := encode(ReservationEvent{})
	assert.Error(t, err)

	body, err := encode(ReservationEvent{
		Type:          TypeReservationCreated,
		RestaurantID:  3,
		ReservationID: 41,
		Date:          "2024-06-01",
		Time:          "18:00",
		PartySize:     4,
		Status:        "confirmed",
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "reservation.created", decoded["type"])
	assert.Equal(t, "18:00", decoded["time"])
	assert.NotEmpty(t, decoded["occurred_at"])
}

func TestEmit_PublishesInBackground(t *testing.T) {
	rec := &recordingPublisher{done: make(chan struct{})}

	Emit(rec, zerolog.New(io.Discard), ReservationEvent{Type: TypeReservationStatusChanged, ReservationID: 9})

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.got, 1)
	assert.False(t, rec.got[0].OccurredAt.IsZero())
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), ReservationEvent{}))
	assert.NoError(t, p.Close())
	Emit(nil, zerolog.New(io.Discard), ReservationEvent{})
}
