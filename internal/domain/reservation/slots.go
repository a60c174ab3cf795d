package reservation

import "github.com/BruksfildServices01/table-reservations/internal/models"

type TimeSlot struct {
	Time           string `json:"time"`
	Available      bool   `json:"available"`
	RemainingSpots int    `json:"remaining_spots"`
	TotalSpots     int    `json:"total_spots"`
}

// BookedCounts maps a stored slot key ("HH:MM:00") to the number of
// reservations occupying it.
type BookedCounts map[string]int

// Boundary decides whether a slot that ends exactly at closing time is offered.
type Boundary int

const (
	// BoundaryStrict emits a slot only while start < close-duration, so a
	// slot ending exactly at closing time is never offered.
	BoundaryStrict Boundary = iota
	// BoundaryInclusive emits a slot while start+duration <= close.
	BoundaryInclusive
)

type Generator struct {
	Boundary Boundary
}

func NewGenerator(inclusive bool) Generator {
	if inclusive {
		return Generator{Boundary: BoundaryInclusive}
	}
	return Generator{Boundary: BoundaryStrict}
}

// Generate lists the day's slots in ascending order. It performs no I/O and
// never mutates its inputs.
func (g Generator) Generate(
	hours *models.OperatingHours,
	cfg models.TimeSlotConfig,
	blocked bool,
	booked BookedCounts,
) []TimeSlot {

	if hours == nil || hours.IsClosed || blocked {
		return []TimeSlot{}
	}

	duration := cfg.SlotDurationMinutes
	if duration <= 0 {
		return []TimeSlot{}
	}

	open, err := ParseClock(hours.OpenTime)
	if err != nil {
		return []TimeSlot{}
	}
	closing, err := ParseClock(hours.CloseTime)
	if err != nil || closing <= open {
		return []TimeSlot{}
	}

	capacity := cfg.MaxReservationsPerSlot
	if capacity < 0 {
		capacity = 0
	}

	slots := make([]TimeSlot, 0, (closing-open)/duration)
	for cur := open; g.fits(cur, closing, duration); cur += duration {
		t := FormatClock(cur)

		remaining := capacity - booked[SlotKey(t)]
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, TimeSlot{
			Time:           t,
			Available:      remaining > 0,
			RemainingSpots: remaining,
			TotalSpots:     capacity,
		})
	}

	return slots
}

func (g Generator) fits(start, closing, duration int) bool {
	if g.Boundary == BoundaryInclusive {
		return start+duration <= closing
	}
	return start < closing-duration
}

// AvailableTimes returns the times of the open slots, never nil.
func AvailableTimes(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}
