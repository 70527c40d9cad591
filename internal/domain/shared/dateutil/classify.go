package dateutil

import "time"

// DayClass captures everything rate tables care about for one day.
type DayClass struct {
	Weekday  bool // Sunday through Thursday
	Friday   bool
	Saturday bool
	Holiday  bool
	Summer   bool // July and August
}

// Classify derives the rate-relevant class of a day. Friday and Saturday are
// the only weekend days for nightly pricing; Sunday counts as a weekday.
func Classify(d Day) DayClass {
	wd := d.Weekday()
	return DayClass{
		Weekday:  wd != time.Friday && wd != time.Saturday,
		Friday:   wd == time.Friday,
		Saturday: wd == time.Saturday,
		Holiday:  IsHoliday(d),
		Summer:   d.Month() == time.July || d.Month() == time.August,
	}
}

// Weekend reports whether the day is Friday or Saturday.
func (c DayClass) Weekend() bool {
	return c.Friday || c.Saturday
}
