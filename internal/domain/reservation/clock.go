package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseClock converts "HH:MM" or "HH:MM:SS" into minutes after midnight.
// "24:00" is accepted as end of day.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	if len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 || len(parts[2]) != 2 {
			return 0, fmt.Errorf("invalid second in %q", s)
		}
	}
	if h == 24 && m != 0 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	return h*60 + m, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock returns s as zero-padded "HH:MM".
func NormalizeClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}

// SlotKey maps a boundary time "HH:MM" to its stored form "HH:MM:00".
func SlotKey(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

// DisplayTime maps a stored "HH:MM:00" back to "HH:MM".
func DisplayTime(key string) string {
	if len(key) > 5 {
		return key[:5]
	}
	return key
}

// ParseDate returns local midnight of a "YYYY-MM-DD" date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// DayOfWeek is 0 for Sunday through 6 for Saturday.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}
