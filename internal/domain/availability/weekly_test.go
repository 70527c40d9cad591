package availability

import (
	"errors"
	"testing"
	"time"

	"namunjari/internal/domain/property"
)

func TestSelectWeeks(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today)

	r, err := e.SelectWeeks(day(2025, time.August, 11), 2, 1, 12)
	if err != nil {
		t.Fatalf("SelectWeeks failed: %v", err)
	}
	if !r.CheckOut.Equal(day(2025, time.August, 25)) {
		t.Errorf("checkout = %s, want 2025-08-25", r.CheckOut)
	}
	if r.Nights() != 14 {
		t.Errorf("nights = %d, want 14", r.Nights())
	}
}

func TestSelectWeeksBounds(t *testing.T) {
	e := newTestEngine(day(2025, time.August, 1))
	anchor := day(2025, time.August, 11)

	if _, err := e.SelectWeeks(anchor, 0, 1, 12); !errors.Is(err, ErrInvalidWeeks) {
		t.Errorf("0 weeks: err = %v, want ErrInvalidWeeks", err)
	}
	if _, err := e.SelectWeeks(anchor, 13, 1, 12); !errors.Is(err, ErrInvalidWeeks) {
		t.Errorf("13 weeks: err = %v, want ErrInvalidWeeks", err)
	}
}

func TestSelectWeeksConflicts(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today, nightlyBlock(property.OnOff, day(2025, time.August, 18), day(2025, time.August, 20)))

	if _, err := e.SelectWeeks(day(2025, time.August, 11), 2, 1, 12); !errors.Is(err, ErrOverlap) {
		t.Errorf("err = %v, want ErrOverlap", err)
	}
	if _, err := e.SelectWeeks(day(2025, time.August, 18), 1, 1, 12); !errors.Is(err, ErrDayNotSelectable) {
		t.Errorf("blocked anchor: err = %v, want ErrDayNotSelectable", err)
	}
	// One week ending exactly at the existing check-in is back-to-back.
	if _, err := e.SelectWeeks(day(2025, time.August, 11), 1, 1, 12); err != nil {
		t.Errorf("back-to-back week rejected: %v", err)
	}
}
