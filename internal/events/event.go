// Package events publishes reservation lifecycle events to a message broker
// for downstream consumers (reporting, integrations).
package events

import (
	"context"
	"time"
)

const (
	TypeReservationCreated       = "reservation.created"
	TypeReservationStatusChanged = "reservation.status_changed"
	TypeReservationRescheduled   = "reservation.rescheduled"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	RestaurantID  uint      `json:"restaurant_id"`
	ReservationID uint      `json:"reservation_id"`
	Reference     string    `json:"reference"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     int       `json:"party_size"`
	Status        string    `json:"status"`
	Source        string    `json:"source,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev ReservationEvent) error
	Close() error
}

// Nop discards events; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, ReservationEvent) error { return nil }
func (Nop) Close() error                                   { return nil }
