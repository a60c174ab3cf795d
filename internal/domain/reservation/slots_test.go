package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

func hours(open, close string) *models.OperatingHours {
	return &models.OperatingHours{OpenTime: open, CloseTime: close}
}

func slotConfig(duration, capacity int) models.TimeSlotConfig {
	return models.TimeSlotConfig{
		SlotDurationMinutes:    duration,
		MaxReservationsPerSlot: capacity,
		DefaultPartySize:       2,
		MaxPartySize:           10,
		AdvanceBookingDays:     30,
	}
}

func TestGenerate_FullDay(t *testing.T) {
	g := NewGenerator(false)

	slots := g.Generate(hours("09:00", "21:00"), slotConfig(30, 10), false, nil)

	require.Len(t, slots, 23)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "20:00", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 10, s.RemainingSpots)
		assert.Equal(t, 10, s.TotalSpots)
	}
}

func TestGenerate_SlotSpanningWholeDayIsEmpty(t *testing.T) {
	g := NewGenerator(false)

	assert.Empty(t, g.Generate(hours("12:00", "13:00"), slotConfig(60, 10), false, nil))
	assert.Empty(t, g.Generate(hours("12:00", "12:50"), slotConfig(60, 10), false, nil))

	slots := g.Generate(hours("09:00", "10:40"), slotConfig(50, 10), false, nil)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Time)
}

func TestGenerate_InclusiveBoundary(t *testing.T) {
	g := NewGenerator(true)

	slots := g.Generate(hours("09:00", "21:00"), slotConfig(30, 10), false, nil)

	require.Len(t, slots, 24)
	assert.Equal(t, "20:30", slots[len(slots)-1].Time)

	assert.Len(t, g.Generate(hours("12:00", "13:00"), slotConfig(60, 10), false, nil), 1)
	assert.Len(t, g.Generate(hours("09:00", "10:40"), slotConfig(50, 10), false, nil), 2)
}

func TestGenerate_ShortCircuits(t *testing.T) {
	g := NewGenerator(false)
	cfg := slotConfig(30, 10)

	tests := []struct {
		name    string
		hours   *models.OperatingHours
		blocked bool
	}{
		{"no hours", nil, false},
		{"closed day", &models.OperatingHours{OpenTime: "09:00", CloseTime: "21:00", IsClosed: true}, false},
		{"blocked date", hours("09:00", "21:00"), true},
		{"closed and blocked", &models.OperatingHours{IsClosed: true}, true},
		{"open equals close", hours("12:00", "12:00"), false},
		{"close before open", hours("22:00", "09:00"), false},
		{"duration longer than day", hours("12:00", "12:20"), false},
		{"unparseable hours", hours("noon", "21:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := g.Generate(tt.hours, cfg, tt.blocked, BookedCounts{"12:00:00": 3})
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerate_ZeroDurationIsEmpty(t *testing.T) {
	slots := NewGenerator(false).Generate(hours("09:00", "21:00"), slotConfig(0, 10), false, nil)
	assert.Empty(t, slots)
}

func TestGenerate_BookedCounts(t *testing.T) {
	g := NewGenerator(false)
	booked := BookedCounts{
		"18:00:00": 10,
		"18:30:00": 12,
		"19:00:00": 4,
		"19:00":    9, // boundary format is never used as a key
	}

	slots := g.Generate(hours("17:00", "21:00"), slotConfig(30, 10), false, booked)

	byTime := map[string]TimeSlot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.Equal(t, TimeSlot{Time: "18:00", Available: false, RemainingSpots: 0, TotalSpots: 10}, byTime["18:00"])
	assert.Equal(t, TimeSlot{Time: "18:30", Available: false, RemainingSpots: 0, TotalSpots: 10}, byTime["18:30"])
	assert.Equal(t, TimeSlot{Time: "19:00", Available: true, RemainingSpots: 6, TotalSpots: 10}, byTime["19:00"])
	assert.Equal(t, 10, byTime["17:00"].RemainingSpots)
}

func TestGenerate_ZeroCapacityStillGeneratesSlots(t *testing.T) {
	g := NewGenerator(false)

	open := g.Generate(hours("09:00", "21:00"), slotConfig(30, 10), false, nil)
	none := g.Generate(hours("09:00", "21:00"), slotConfig(30, 0), false, nil)

	require.Len(t, none, len(open))
	for _, s := range none {
		assert.False(t, s.Available)
		assert.Equal(t, 0, s.RemainingSpots)
		assert.Equal(t, 0, s.TotalSpots)
	}
	assert.Empty(t, AvailableTimes(none))
}

func TestGenerate_TrailingGap(t *testing.T) {
	slots := NewGenerator(false).Generate(hours("09:00", "10:40"), slotConfig(45, 5), false, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:45", slots[1].Time)
}

func TestGenerate_Properties(t *testing.T) {
	cases := []struct {
		open, close string
		duration    int
	}{
		{"09:00", "21:00", 30},
		{"11:30", "14:45", 20},
		{"07:05", "23:59", 45},
		{"00:00", "24:00", 90},
		{"17:00:00", "22:30:00", 15},
	}

	for _, strict := range []bool{false, true} {
		g := NewGenerator(strict)
		for _, c := range cases {
			h := hours(c.open, c.close)
			cfg := slotConfig(c.duration, 3)
			closing, err := ParseClock(c.close)
			require.NoError(t, err)

			slots := g.Generate(h, cfg, false, BookedCounts{})
			prev := -1
			for _, s := range slots {
				start, err := ParseClock(s.Time)
				require.NoError(t, err)
				assert.Greater(t, start, prev, "times must be strictly increasing")
				assert.LessOrEqual(t, start+c.duration, closing, "slot %s ends after close", s.Time)
				assert.Len(t, s.Time, 5)
				prev = start
			}

			assert.Equal(t, slots, g.Generate(h, cfg, false, BookedCounts{}), "generation must be deterministic")
		}
	}
}

func TestGenerate_DoesNotMutateInputs(t *testing.T) {
	h := hours("18:00", "20:00")
	cfg := slotConfig(30, 2)
	booked := BookedCounts{"18:00:00": 5}

	NewGenerator(false).Generate(h, cfg, false, booked)

	assert.Equal(t, hours("18:00", "20:00"), h)
	assert.Equal(t, slotConfig(30, 2), cfg)
	assert.Equal(t, BookedCounts{"18:00:00": 5}, booked)
}

func TestClosureStatus(t *testing.T) {
	assert.Equal(t, AvailabilityClosed, ClosureStatus(nil, true))
	assert.Equal(t, AvailabilityClosed, ClosureStatus(&models.OperatingHours{IsClosed: true}, true))
	assert.Equal(t, AvailabilityBlocked, ClosureStatus(hours("09:00", "10:00"), true))
	assert.Equal(t, AvailabilityOpen, ClosureStatus(hours("09:00", "10:00"), false))
}
