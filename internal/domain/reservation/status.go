package reservation

import "github.com/BruksfildServices01/table-reservations/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusCancelled, StatusNoShow, StatusCompleted:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNoShow || s == StatusCompleted
}

// OccupiesSlot reports whether a reservation in this status counts against
// slot capacity.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition allows confirmed to move to any terminal status. A transition
// to the current status is a no-op.
func CanTransition(from, to Status) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if from != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
