package audit

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *memorySink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("db down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zerolog.New(io.Discard))

	id := uint(7)
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{RestaurantID: 1, Action: "reservation_created", Entity: "reservation", EntityID: &id})
	}
	d.Close()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.events, 10)
	assert.Equal(t, "reservation_created", sink.events[0].Action)
}

func TestDispatcher_SinkErrorsAreLogged(t *testing.T) {
	sink := &memorySink{fail: true}
	d := NewDispatcher(sink, zerolog.New(io.Discard))

	d.Dispatch(Event{Action: "x"})
	d.Close()
	d.Close()

	assert.Empty(t, sink.events)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zerolog.New(io.Discard))

	d.Dispatch(Event{Action: "before"})
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "after"}) })

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.events, 1)
	assert.Equal(t, "before", sink.events[0].Action)
}

func TestDispatcher_CloseRacesWithDispatch(t *testing.T) {
	d := NewDispatcher(&memorySink{}, zerolog.New(io.Discard))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "late"})
			}
		}()
	}

	assert.NotPanics(t, d.Close)
	wg.Wait()
}
