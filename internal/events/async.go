package events

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Emit publishes ev in the background with its own timeout. Failures are
// logged; a booking never fails because the broker is down.
func Emit(p Publisher, log zerolog.Logger, ev ReservationEvent) {
	if p == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := p.Publish(ctx, ev); err != nil {
			log.Warn().
				Err(err).
				Str("event", ev.Type).
				Uint("reservation_id", ev.ReservationID).
				Msg("event publish failed")
		}
	}()
}
