package money

import "strconv"

// Won is an amount in integer KRW. The won has no minor unit, so plain
// integers are exact.
type Won int64

// Multiply scales the amount.
func (w Won) Multiply(times int64) Won {
	return Won(int64(w) * times)
}

// DiscountPercent applies an integer percentage discount, truncating toward
// zero the way the till rounds.
func (w Won) DiscountPercent(pct int64) Won {
	return Won(int64(w) * (100 - pct) / 100)
}

// Format renders the amount with thousands separators, e.g. 440,000.
func (w Won) Format() string {
	s := strconv.FormatInt(int64(w), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
