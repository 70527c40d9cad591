package pricing

import (
	"errors"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
	"namunjari/internal/domain/shared/money"
)

var (
	ErrNoRateTable = errors.New("pricing: property has no rate table for this mode")
	ErrInvalidStay = errors.New("pricing: stay does not match the property's booking mode")
)

// nonRefundableDiscountPct is the flat discount for waiving refundability.
const nonRefundableDiscountPct = 10

// Options are the party choices that move the price.
type Options struct {
	Guests     int
	Pets       int
	Barbecue   bool
	Refundable bool
}

// Line is one itemized surcharge.
type Line struct {
	Label  string
	Amount money.Won
}

// Quote is a derived price, never stored. Identical inputs always produce
// an identical quote.
type Quote struct {
	Base       money.Won
	Surcharges []Line
	Discount   money.Won // amount subtracted for the non-refundable option
	Deposit    money.Won // weekly stays only, part of Total
	Total      money.Won
}

// Stay is the validated selection being priced.
type Stay struct {
	Range daterange.Range
	Hours *daterange.HourRange
	Weeks int
}

// For prices a stay at a property, dispatching on the booking mode.
func For(p property.Property, stay Stay, opts Options) (Quote, error) {
	switch p.Mode {
	case property.ModeNightly:
		return Nightly(p, stay.Range, opts)
	case property.ModeHourly:
		if stay.Hours == nil {
			return Quote{}, ErrInvalidStay
		}
		return Hourly(p, *stay.Hours, opts)
	case property.ModeWeekly:
		return Weekly(p, stay.Weeks)
	}
	return Quote{}, ErrNoRateTable
}

// Nightly sums independently classified nights, then layers surcharges and
// the optional non-refundable discount.
func Nightly(p property.Property, r daterange.Range, opts Options) (Quote, error) {
	rates := p.Nightly
	if rates == nil {
		return Quote{}, ErrNoRateTable
	}
	if err := r.Validate(); err != nil {
		return Quote{}, err
	}

	var q Quote
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDays(1) {
		q.Base += nightRate(*rates, d)
	}

	nights := int64(r.Nights())
	total := q.Base

	billed := opts.Guests
	if rates.MinHeadcount > 0 && billed < rates.MinHeadcount {
		billed = rates.MinHeadcount
	}
	if extra := billed - rates.FreeHeadcount; extra > 0 {
		amount := rates.ExtraGuest.Multiply(int64(extra)).Multiply(nights)
		q.Surcharges = append(q.Surcharges, Line{Label: "추가 인원", Amount: amount})
		total += amount
	}
	if opts.Pets > 0 {
		amount := rates.Pet.Multiply(int64(opts.Pets)).Multiply(nights)
		q.Surcharges = append(q.Surcharges, Line{Label: "반려견", Amount: amount})
		total += amount
	}
	if opts.Barbecue {
		q.Surcharges = append(q.Surcharges, Line{Label: "바베큐", Amount: rates.Barbecue})
		total += rates.Barbecue
	}

	if !opts.Refundable {
		discounted := total.DiscountPercent(nonRefundableDiscountPct)
		q.Discount = total - discounted
		total = discounted
	}
	q.Total = total
	return q, nil
}

func nightRate(t property.NightlyRateTable, d dateutil.Day) money.Won {
	class := dateutil.Classify(d)
	season := t.Normal
	if class.Summer {
		season = t.Summer
	}
	switch {
	case class.Holiday:
		return season.Holiday
	case class.Weekday:
		return season.Weekday
	case class.Friday:
		return season.Friday
	default:
		return season.Saturday
	}
}

// Hourly prices contiguous hour use. The weekend rate applies Friday
// through Sunday.
func Hourly(p property.Property, h daterange.HourRange, opts Options) (Quote, error) {
	rates := p.Hourly
	if rates == nil {
		return Quote{}, ErrNoRateTable
	}
	if err := h.Validate(); err != nil {
		return Quote{}, err
	}

	rate := rates.Weekday
	if wd := h.Day.Weekday(); wd == time.Sunday || wd == time.Friday || wd == time.Saturday {
		rate = rates.Weekend
	}

	hours := int64(h.Hours())
	var q Quote
	q.Base = rate.Multiply(hours)
	total := q.Base
	if extra := opts.Guests - rates.FreeHeadcount; extra > 0 {
		amount := rates.ExtraGuest.Multiply(int64(extra)).Multiply(hours)
		q.Surcharges = append(q.Surcharges, Line{Label: "추가 인원", Amount: amount})
		total += amount
	}
	q.Total = total
	return q, nil
}

// Weekly prices whole-week stays: (rent + management) per week plus a flat
// cleaning fee; the deposit is added to the transfer total and itemized
// separately so it can be returned after the stay.
func Weekly(p property.Property, weeks int) (Quote, error) {
	rates := p.Weekly
	if rates == nil {
		return Quote{}, ErrNoRateTable
	}
	if weeks < rates.MinWeeks || weeks > rates.MaxWeeks {
		return Quote{}, ErrInvalidStay
	}

	perWeek := rates.RentPerWeek + rates.ManagementPerWeek
	var q Quote
	q.Base = perWeek.Multiply(int64(weeks))
	q.Surcharges = append(q.Surcharges, Line{Label: "청소비", Amount: rates.CleaningFee})
	q.Deposit = rates.Deposit
	q.Total = q.Base + rates.CleaningFee + rates.Deposit
	return q, nil
}
