package reservation

import "github.com/BruksfildServices01/table-reservations/internal/models"

type AvailabilityStatus string

const (
	AvailabilityOpen          AvailabilityStatus = "open"
	AvailabilityNotConfigured AvailabilityStatus = "not_configured"
	AvailabilityClosed        AvailabilityStatus = "closed"
	AvailabilityBlocked       AvailabilityStatus = "blocked"
)

// Availability is the computed slot list for one restaurant and date.
// NotConfigured, Closed and Blocked are valid outcomes with no slots.
type Availability struct {
	Date      string             `json:"date"`
	DayOfWeek int                `json:"day_of_week"`
	Status    AvailabilityStatus `json:"status"`
	Slots     []TimeSlot         `json:"slots"`
}

// ClosureStatus mirrors the generator's short-circuit order.
func ClosureStatus(hours *models.OperatingHours, blocked bool) AvailabilityStatus {
	switch {
	case hours == nil, hours.IsClosed:
		return AvailabilityClosed
	case blocked:
		return AvailabilityBlocked
	default:
		return AvailabilityOpen
	}
}
