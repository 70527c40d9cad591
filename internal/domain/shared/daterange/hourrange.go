package daterange

import (
	"errors"
	"fmt"

	"namunjari/internal/domain/shared/dateutil"
)

var ErrInvalidHourRange = errors.New("daterange: end hour must be after start hour")

// HourRange is a half-open hour interval [StartHour, EndHour) within one
// calendar day, for spaces rented by the hour.
type HourRange struct {
	Day       dateutil.Day
	StartHour int
	EndHour   int
}

func NewHourRange(day dateutil.Day, startHour, endHour int) (HourRange, error) {
	h := HourRange{Day: day, StartHour: startHour, EndHour: endHour}
	if err := h.Validate(); err != nil {
		return HourRange{}, err
	}
	return h, nil
}

func (h HourRange) Validate() error {
	if h.Day.IsZero() {
		return ErrInvalidHourRange
	}
	if h.StartHour < 0 || h.EndHour > 24 || h.StartHour >= h.EndHour {
		return ErrInvalidHourRange
	}
	return nil
}

func (h HourRange) Hours() int {
	return h.EndHour - h.StartHour
}

// ContainsHour reports whether the hour slot is occupied.
func (h HourRange) ContainsHour(hour int) bool {
	return hour >= h.StartHour && hour < h.EndHour
}

// Overlaps reports whether two hour ranges on the same day share a slot.
// Ranges on different days never overlap.
func (h HourRange) Overlaps(other HourRange) bool {
	if !h.Day.Equal(other.Day) {
		return false
	}
	return h.StartHour < other.EndHour && other.StartHour < h.EndHour
}

// String formats as "2025-08-12 09:00~12:00".
func (h HourRange) String() string {
	return fmt.Sprintf("%s %02d:00~%02d:00", h.Day, h.StartHour, h.EndHour)
}
