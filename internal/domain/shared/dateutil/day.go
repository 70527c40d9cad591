package dateutil

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDay = errors.New("dateutil: invalid calendar day")

// Seoul is the canonical time zone for every calendar comparison in the
// system. Wall-clock instants are converted to a Day at the boundary and
// never compared as raw time.Time values.
var Seoul = mustLoadSeoul()

func mustLoadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// Fixed offset fallback; KST has no daylight saving.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Day is one calendar day in Asia/Seoul. The zero value is not a valid day.
type Day struct {
	t time.Time // midnight UTC of the calendar date, used for arithmetic only
}

// DayOf converts an instant to the calendar day it falls on in Seoul.
func DayOf(at time.Time) Day {
	local := at.In(Seoul)
	return NewDay(local.Year(), local.Month(), local.Day())
}

// NewDay builds a Day from calendar components.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(value string) (Day, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, value)
	}
	return Day{t: t}, nil
}

// Today returns the current calendar day in Seoul.
func Today(now time.Time) Day {
	return DayOf(now)
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Year() int             { return d.t.Year() }
func (d Day) Month() time.Month     { return d.t.Month() }
func (d Day) DayOfMonth() int       { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }

// AddDays returns the day n days later (earlier for negative n).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// AddMonths returns the day n calendar months later.
func (d Day) AddMonths(n int) Day {
	return Day{t: d.t.AddDate(0, n, 0)}
}

// DaysUntil returns the number of days from d to other. Negative when other
// is earlier.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.t.Format("2006-01-02")
}

// FormatWithWeekday formats as MM/DD(요일) the way guest-facing messages do.
func (d Day) FormatWithWeekday() string {
	names := [...]string{"일", "월", "화", "수", "목", "금", "토"}
	return fmt.Sprintf("%02d/%02d(%s)", int(d.Month()), d.DayOfMonth(), names[d.Weekday()])
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(data []byte) error {
	parsed, err := ParseDay(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MinDay returns the earlier of two days.
func MinDay(a, b Day) Day {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDay returns the later of two days.
func MaxDay(a, b Day) Day {
	if a.After(b) {
		return a
	}
	return b
}
