package daterange

import (
	"errors"

	"namunjari/internal/domain/shared/dateutil"
)

var ErrInvalidRange = errors.New("daterange: checkout must be after checkin")

// Range represents a half-open interval of calendar days [CheckIn, CheckOut).
// The checkout day itself is not occupied, so a new stay may check in on it.
type Range struct {
	CheckIn  dateutil.Day
	CheckOut dateutil.Day
}

func New(checkIn, checkOut dateutil.Day) (Range, error) {
	r := Range{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (r Range) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// Overlaps reports whether two ranges share at least one occupied night.
// Ranges that only touch at a boundary day (back-to-back stays) do not
// overlap.
func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Adjacent reports whether the ranges touch at exactly one boundary day.
func (r Range) Adjacent(other Range) bool {
	return r.CheckOut.Equal(other.CheckIn) || r.CheckIn.Equal(other.CheckOut)
}

// ContainsDay reports whether the day is occupied by the range.
func (r Range) ContainsDay(d dateutil.Day) bool {
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// Days lists every day of the range, checkout day included. This mirrors the
// node array a calendar presents (check-in through checkout inclusive).
func (r Range) Days() []dateutil.Day {
	out := make([]dateutil.Day, 0, r.Nights()+1)
	for d := r.CheckIn; !d.After(r.CheckOut); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}
