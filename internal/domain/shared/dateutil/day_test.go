package dateutil

import (
	"testing"
	"time"
)

func TestDayOfUsesSeoulCalendar(t *testing.T) {
	// 2025-08-09 16:00 UTC is already 2025-08-10 01:00 in Seoul.
	at := time.Date(2025, 8, 9, 16, 0, 0, 0, time.UTC)
	got := DayOf(at)
	want := NewDay(2025, time.August, 10)
	if !got.Equal(want) {
		t.Fatalf("DayOf(%v) = %s, want %s", at, got, want)
	}
}

func TestDayOfSameDayBeforeSeoulMidnight(t *testing.T) {
	at := time.Date(2025, 8, 9, 14, 59, 0, 0, time.UTC)
	if got := DayOf(at); !got.Equal(NewDay(2025, time.August, 9)) {
		t.Fatalf("DayOf = %s, want 2025-08-09", got)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2025-12-31")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if d.String() != "2025-12-31" {
		t.Errorf("String() = %s, want 2025-12-31", d.String())
	}
	if d.Weekday() != time.Wednesday {
		t.Errorf("Weekday() = %v, want Wednesday", d.Weekday())
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	if _, err := ParseDay("31/12/2025"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestAddMonthsAndDaysUntil(t *testing.T) {
	d := NewDay(2025, time.January, 31)
	if got := d.AddMonths(12); !got.Equal(NewDay(2026, time.January, 31)) {
		t.Errorf("AddMonths(12) = %s", got)
	}
	a := NewDay(2025, time.August, 10)
	b := NewDay(2025, time.August, 13)
	if n := a.DaysUntil(b); n != 3 {
		t.Errorf("DaysUntil = %d, want 3", n)
	}
	if n := b.DaysUntil(a); n != -3 {
		t.Errorf("reverse DaysUntil = %d, want -3", n)
	}
}

func TestFormatWithWeekday(t *testing.T) {
	d := NewDay(2025, time.August, 10) // Sunday
	if got := d.FormatWithWeekday(); got != "08/10(일)" {
		t.Errorf("FormatWithWeekday = %s, want 08/10(일)", got)
	}
}

func TestMarshalTextRoundTrip(t *testing.T) {
	d := NewDay(2025, time.March, 1)
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var back Day
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		day  Day
		want DayClass
	}{
		{NewDay(2025, time.August, 10), DayClass{Weekday: true, Summer: true}},                 // Sunday
		{NewDay(2025, time.August, 8), DayClass{Friday: true, Summer: true}},                   // Friday
		{NewDay(2025, time.August, 9), DayClass{Saturday: true, Summer: true}},                 // Saturday
		{NewDay(2025, time.August, 15), DayClass{Friday: true, Holiday: true, Summer: true}},   // 광복절
		{NewDay(2025, time.October, 6), DayClass{Weekday: true, Holiday: true}},                // 추석
		{NewDay(2025, time.November, 12), DayClass{Weekday: true}},                             // Wednesday
	}
	for _, tc := range cases {
		if got := Classify(tc.day); got != tc.want {
			t.Errorf("Classify(%s) = %+v, want %+v", tc.day, got, tc.want)
		}
	}
}

func TestWeekend(t *testing.T) {
	if !(DayClass{Friday: true}).Weekend() {
		t.Error("Friday should be weekend")
	}
	if (DayClass{Weekday: true}).Weekend() {
		t.Error("weekday should not be weekend")
	}
}
