package availability

import (
	"errors"

	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

var (
	ErrNoAnchor       = errors.New("availability: no check-in day selected")
	ErrDayNotSelectable = errors.New("availability: day cannot start a stay")
	ErrZeroLength     = errors.New("availability: check-in and checkout cannot be the same day")
	ErrOverlap        = errors.New("availability: selection overlaps an existing reservation")
	ErrOutsideWindow  = errors.New("availability: selection is outside the bookable window")
)

// horizonMonths bounds how far ahead a stay may be booked.
const horizonMonths = 12

// Engine drives date selection against one property's calendar. Validation
// errors clear the in-progress selection so the guest starts over rather
// than retrying a poisoned partial pick.
type Engine struct {
	Calendar *Calendar
	Today    dateutil.Day

	anchor    dateutil.Day
	hasAnchor bool
	picked    *daterange.Range
}

// NewEngine builds an engine for the calendar as of today.
func NewEngine(cal *Calendar, today dateutil.Day) *Engine {
	return &Engine{Calendar: cal, Today: today}
}

// Horizon is the last selectable checkout day: twelve months from today,
// minus one day.
func (e *Engine) Horizon() dateutil.Day {
	return e.Today.AddMonths(horizonMonths).AddDays(-1)
}

// earliest selectable day; same-day check-in is not offered.
func (e *Engine) minDay() dateutil.Day {
	return e.Today.AddDays(1)
}

// CellState classifies one day for rendering.
func (e *Engine) CellState(d dateutil.Day) CellState {
	if e.picked != nil && !d.Before(e.picked.CheckIn) && !d.After(e.picked.CheckOut) {
		return CellSelected
	}
	if e.hasAnchor && d.Equal(e.anchor) {
		return CellSelected
	}
	if d.Before(e.minDay()) || d.After(e.Horizon()) {
		return CellBlocked
	}
	if e.Calendar.occupied(d) {
		return CellBlocked
	}
	if e.Calendar.isCheckOut(d) {
		return CellCheckoutOnly
	}
	return CellAvailable
}

// Anchor starts a selection on a day that can host a new check-in. Any
// prior pick is discarded.
func (e *Engine) Anchor(d dateutil.Day) error {
	e.picked = nil
	switch e.CellState(d) {
	case CellAvailable, CellCheckoutOnly:
		e.anchor = d
		e.hasAnchor = true
		return nil
	default:
		e.hasAnchor = false
		return ErrDayNotSelectable
	}
}

// MaxCheckout is the furthest checkout the current anchor allows: the
// earliest check-in of a later block, or the horizon, whichever is sooner.
func (e *Engine) MaxCheckout() (dateutil.Day, error) {
	if !e.hasAnchor {
		return dateutil.Day{}, ErrNoAnchor
	}
	bound := e.Horizon()
	if next, ok := e.Calendar.nextCheckInAfter(e.anchor); ok {
		bound = dateutil.MinDay(bound, next)
	}
	return bound, nil
}

// Complete closes the selection with a second day. The pair is normalized
// so the earlier day is the check-in. On any validation failure the whole
// selection is cleared and an error returned.
func (e *Engine) Complete(d dateutil.Day) (daterange.Range, error) {
	if !e.hasAnchor {
		return daterange.Range{}, ErrNoAnchor
	}
	lo, hi := e.anchor, d
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	e.Reset()
	if lo.Equal(hi) {
		return daterange.Range{}, ErrZeroLength
	}
	r, err := daterange.New(lo, hi)
	if err != nil {
		return daterange.Range{}, err
	}
	if err := e.ValidateRange(r); err != nil {
		return daterange.Range{}, err
	}
	e.picked = &r
	return r, nil
}

// ValidateRange checks a proposed stay against the window and every
// existing block. Back-to-back boundaries are the only permitted touching.
func (e *Engine) ValidateRange(r daterange.Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.CheckIn.Before(e.minDay()) || r.CheckOut.After(e.Horizon()) {
		return ErrOutsideWindow
	}
	for _, block := range e.Calendar.Ranges() {
		if r.Overlaps(block) {
			return ErrOverlap
		}
	}
	return nil
}

// Picked returns the completed selection, if any.
func (e *Engine) Picked() (daterange.Range, bool) {
	if e.picked == nil {
		return daterange.Range{}, false
	}
	return *e.picked, true
}

// Reset drops the anchor and any completed pick unconditionally.
func (e *Engine) Reset() {
	e.hasAnchor = false
	e.anchor = dateutil.Day{}
	e.picked = nil
}
