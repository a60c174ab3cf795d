package reservation

import (
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Transition(r *models.Reservation, to Status, now time.Time) error {
	from := Status(r.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	r.Status = string(to)
	switch to {
	case StatusCancelled:
		r.CancelledAt = &now
	case StatusCompleted:
		r.CompletedAt = &now
	case StatusNoShow:
		r.NoShowAt = &now
	}
	return nil
}

func Cancel(r *models.Reservation, now time.Time) error {
	return Transition(r, StatusCancelled, now)
}

func Complete(r *models.Reservation, now time.Time) error {
	return Transition(r, StatusCompleted, now)
}

func MarkNoShow(r *models.Reservation, now time.Time) error {
	return Transition(r, StatusNoShow, now)
}
