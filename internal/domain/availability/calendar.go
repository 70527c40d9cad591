package availability

import (
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

// CellState is what one calendar day means to a guest picking dates.
type CellState int

const (
	// CellAvailable days can start or end a stay.
	CellAvailable CellState = iota
	// CellCheckoutOnly days end an existing stay; a new stay may check in
	// on them (back-to-back) but they cannot be an interior night.
	CellCheckoutOnly
	// CellBlocked days are occupied, out of the booking window, or both a
	// check-in and a checkout of existing stays.
	CellBlocked
	// CellSelected days belong to the guest's in-progress choice.
	CellSelected
)

func (s CellState) String() string {
	switch s {
	case CellAvailable:
		return "AVAILABLE"
	case CellCheckoutOnly:
		return "CHECKOUT_ONLY"
	case CellBlocked:
		return "BLOCKED"
	case CellSelected:
		return "SELECTED"
	}
	return "UNKNOWN"
}

// Calendar is the merged read model of everything occupying one property:
// internal reservations plus externally-synced blocks. Degraded marks that
// one of the two sources could not be loaded and the picture may be
// incomplete.
type Calendar struct {
	Property property.ID
	Blocks   []Block
	Degraded bool
}

// Ranges lists the date ranges of all nightly blocks.
func (c *Calendar) Ranges() []daterange.Range {
	out := make([]daterange.Range, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		if b.Hours == nil {
			out = append(out, b.Range)
		}
	}
	return out
}

// HourBlocks lists the hour ranges of all hourly blocks.
func (c *Calendar) HourBlocks() []daterange.HourRange {
	var out []daterange.HourRange
	for _, b := range c.Blocks {
		if b.Hours != nil {
			out = append(out, *b.Hours)
		}
	}
	return out
}

// occupied reports whether any block covers the day (check-in through the
// night before checkout).
func (c *Calendar) occupied(d dateutil.Day) bool {
	for _, r := range c.Ranges() {
		if r.ContainsDay(d) {
			return true
		}
	}
	return false
}

// isCheckOut reports whether the day ends some existing block.
func (c *Calendar) isCheckOut(d dateutil.Day) bool {
	for _, r := range c.Ranges() {
		if r.CheckOut.Equal(d) {
			return true
		}
	}
	return false
}

// nextCheckInAfter returns the earliest block check-in strictly after the
// day, if any.
func (c *Calendar) nextCheckInAfter(d dateutil.Day) (dateutil.Day, bool) {
	var best dateutil.Day
	found := false
	for _, r := range c.Ranges() {
		if r.CheckIn.After(d) && (!found || r.CheckIn.Before(best)) {
			best = r.CheckIn
			found = true
		}
	}
	return best, found
}
