package availability

import (
	"errors"

	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

var ErrInvalidWeeks = errors.New("availability: weeks out of range")

// SelectWeeks books whole weeks from an anchor day: checkout lands exactly
// weeks*7 days later. The resulting range is validated in one step; there
// is no incremental day-by-day selection and partial weeks are not offered.
func (e *Engine) SelectWeeks(anchor dateutil.Day, weeks, minWeeks, maxWeeks int) (daterange.Range, error) {
	if weeks < minWeeks || weeks > maxWeeks {
		return daterange.Range{}, ErrInvalidWeeks
	}
	if st := e.CellState(anchor); st != CellAvailable && st != CellCheckoutOnly {
		return daterange.Range{}, ErrDayNotSelectable
	}
	r, err := daterange.New(anchor, anchor.AddDays(weeks*7))
	if err != nil {
		return daterange.Range{}, err
	}
	if err := e.ValidateRange(r); err != nil {
		return daterange.Range{}, err
	}
	e.picked = &r
	return r, nil
}
