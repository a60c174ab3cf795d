package reservation

import (
	"errors"
	"fmt"
)

const (
	RejectNotOffered = "not_offered"
	RejectFull       = "full"
)

// SlotUnavailableError rejects a booking and carries what the caller needs to
// offer another slot.
type SlotUnavailableError struct {
	Date         string
	Time         string
	Reason       string
	Alternatives []string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s unavailable: %s", e.Date, e.Time, e.Reason)
}

func AsSlotUnavailable(err error) (*SlotUnavailableError, bool) {
	var su *SlotUnavailableError
	if errors.As(err, &su) {
		return su, true
	}
	return nil, false
}

// Admit checks requested ("HH:MM") against a freshly generated slot list.
func Admit(date string, slots []TimeSlot, requested string) error {
	for _, s := range slots {
		if s.Time != requested {
			continue
		}
		if s.Available {
			return nil
		}
		return &SlotUnavailableError{
			Date:         date,
			Time:         requested,
			Reason:       RejectFull,
			Alternatives: AvailableTimes(slots),
		}
	}

	return &SlotUnavailableError{
		Date:         date,
		Time:         requested,
		Reason:       RejectNotOffered,
		Alternatives: AvailableTimes(slots),
	}
}
