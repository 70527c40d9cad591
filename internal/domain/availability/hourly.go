package availability

import (
	"errors"
	"sort"

	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

var (
	ErrNoHours           = errors.New("availability: no hours selected")
	ErrHoursNotContiguous = errors.New("availability: selected hours must be contiguous")
	ErrHourBlocked       = errors.New("availability: an already reserved hour is included")
	ErrHourOutOfDay      = errors.New("availability: hours must be within 0..23")
)

// HourBlocked reports whether the hour of a day is inside any existing
// hourly block.
func (c *Calendar) HourBlocked(day dateutil.Day, hour int) bool {
	for _, h := range c.HourBlocks() {
		if h.Day.Equal(day) && h.ContainsHour(hour) {
			return true
		}
	}
	return false
}

// SelectHours validates a set of integer hours within one day and returns
// the resulting half-open hour range. The day must sit inside the bookable
// window; the set must be non-empty, contiguous after sorting, inside the
// day, and free of existing blocks.
func (e *Engine) SelectHours(day dateutil.Day, hours []int) (daterange.HourRange, error) {
	if len(hours) == 0 {
		return daterange.HourRange{}, ErrNoHours
	}
	if day.Before(e.minDay()) || day.After(e.Horizon()) {
		return daterange.HourRange{}, ErrOutsideWindow
	}
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	for i, h := range sorted {
		if h < 0 || h > 23 {
			return daterange.HourRange{}, ErrHourOutOfDay
		}
		if i > 0 && sorted[i]-sorted[i-1] != 1 {
			return daterange.HourRange{}, ErrHoursNotContiguous
		}
	}
	for _, h := range sorted {
		if e.Calendar.HourBlocked(day, h) {
			return daterange.HourRange{}, ErrHourBlocked
		}
	}
	return daterange.NewHourRange(day, sorted[0], sorted[len(sorted)-1]+1)
}

// ValidateHourRange checks a proposed hour range against existing blocks,
// for submissions that arrive as a start/end pair instead of a slot set.
func (e *Engine) ValidateHourRange(h daterange.HourRange) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.Day.Before(e.minDay()) || h.Day.After(e.Horizon()) {
		return ErrOutsideWindow
	}
	for _, existing := range e.Calendar.HourBlocks() {
		if h.Overlaps(existing) {
			return ErrHourBlocked
		}
	}
	return nil
}
