package availability

import (
	"errors"
	"testing"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

func day(y int, m time.Month, d int) dateutil.Day {
	return dateutil.NewDay(y, m, d)
}

func nightlyBlock(prop property.ID, in, out dateutil.Day) Block {
	return Block{
		Property: prop,
		Range:    daterange.Range{CheckIn: in, CheckOut: out},
		Source:   SourceExternal,
	}
}

func newTestEngine(today dateutil.Day, blocks ...Block) *Engine {
	cal := &Calendar{Property: property.Blon, Blocks: blocks}
	return NewEngine(cal, today)
}

func TestCellStatesAroundBlock(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today, nightlyBlock(property.Blon, day(2025, time.August, 10), day(2025, time.August, 12)))

	cases := []struct {
		d    dateutil.Day
		want CellState
	}{
		{day(2025, time.August, 9), CellAvailable},
		{day(2025, time.August, 10), CellBlocked},  // check-in night
		{day(2025, time.August, 11), CellBlocked},  // interior night
		{day(2025, time.August, 12), CellCheckoutOnly},
		{day(2025, time.August, 13), CellAvailable},
		{today, CellBlocked},                // same-day check-in not offered
		{today.AddDays(-5), CellBlocked},    // the past
	}
	for _, tc := range cases {
		if got := e.CellState(tc.d); got != tc.want {
			t.Errorf("CellState(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestDayBothCheckInAndCheckoutIsBlocked(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today,
		nightlyBlock(property.Blon, day(2025, time.August, 10), day(2025, time.August, 12)),
		nightlyBlock(property.Blon, day(2025, time.August, 12), day(2025, time.August, 14)),
	)
	if got := e.CellState(day(2025, time.August, 12)); got != CellBlocked {
		t.Errorf("shared boundary day = %v, want CellBlocked", got)
	}
}

// A guest books blon around an existing 08-10..08-12 reservation: checking
// in on the checkout day works, wrapping the reservation does not.
func TestBackToBackSelection(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today, nightlyBlock(property.Blon, day(2025, time.August, 10), day(2025, time.August, 12)))

	if err := e.Anchor(day(2025, time.August, 12)); err != nil {
		t.Fatalf("anchoring the checkout day failed: %v", err)
	}
	r, err := e.Complete(day(2025, time.August, 14))
	if err != nil {
		t.Fatalf("back-to-back stay rejected: %v", err)
	}
	if !r.CheckIn.Equal(day(2025, time.August, 12)) || !r.CheckOut.Equal(day(2025, time.August, 14)) {
		t.Errorf("got range %s..%s", r.CheckIn, r.CheckOut)
	}

	e.Reset()
	if err := e.Anchor(day(2025, time.August, 9)); err != nil {
		t.Fatalf("anchoring a free day failed: %v", err)
	}
	if _, err := e.Complete(day(2025, time.August, 11)); !errors.Is(err, ErrOverlap) {
		t.Fatalf("overlapping stay accepted, err = %v", err)
	}
	if _, ok := e.Picked(); ok {
		t.Error("failed completion should clear the selection")
	}
}

func TestCompleteNormalizesOrder(t *testing.T) {
	e := newTestEngine(day(2025, time.August, 1))
	if err := e.Anchor(day(2025, time.August, 14)); err != nil {
		t.Fatalf("Anchor failed: %v", err)
	}
	r, err := e.Complete(day(2025, time.August, 12))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !r.CheckIn.Equal(day(2025, time.August, 12)) {
		t.Errorf("check-in = %s, want the earlier day", r.CheckIn)
	}
}

func TestCompleteZeroLength(t *testing.T) {
	e := newTestEngine(day(2025, time.August, 1))
	if err := e.Anchor(day(2025, time.August, 12)); err != nil {
		t.Fatalf("Anchor failed: %v", err)
	}
	if _, err := e.Complete(day(2025, time.August, 12)); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("err = %v, want ErrZeroLength", err)
	}
}

func TestCompleteWithoutAnchor(t *testing.T) {
	e := newTestEngine(day(2025, time.August, 1))
	if _, err := e.Complete(day(2025, time.August, 12)); !errors.Is(err, ErrNoAnchor) {
		t.Fatalf("err = %v, want ErrNoAnchor", err)
	}
}

func TestAnchorRejectsBlockedDay(t *testing.T) {
	e := newTestEngine(day(2025, time.August, 1),
		nightlyBlock(property.Blon, day(2025, time.August, 10), day(2025, time.August, 12)))
	if err := e.Anchor(day(2025, time.August, 10)); !errors.Is(err, ErrDayNotSelectable) {
		t.Fatalf("err = %v, want ErrDayNotSelectable", err)
	}
}

func TestHorizonTwelveMonths(t *testing.T) {
	today := day(2025, time.August, 9)
	e := newTestEngine(today)
	want := day(2026, time.August, 8)
	if got := e.Horizon(); !got.Equal(want) {
		t.Errorf("Horizon = %s, want %s", got, want)
	}
	if got := e.CellState(want.AddDays(1)); got != CellBlocked {
		t.Errorf("day past horizon = %v, want CellBlocked", got)
	}
	if got := e.CellState(want); got != CellAvailable {
		t.Errorf("horizon day = %v, want CellAvailable", got)
	}
}

func TestValidateRangeOutsideWindow(t *testing.T) {
	today := day(2025, time.August, 9)
	e := newTestEngine(today)

	past, _ := daterange.New(today, today.AddDays(2))
	if err := e.ValidateRange(past); !errors.Is(err, ErrOutsideWindow) {
		t.Errorf("same-day check-in: err = %v, want ErrOutsideWindow", err)
	}
	horizon := e.Horizon()
	far, _ := daterange.New(horizon, horizon.AddDays(2))
	if err := e.ValidateRange(far); !errors.Is(err, ErrOutsideWindow) {
		t.Errorf("checkout past horizon: err = %v, want ErrOutsideWindow", err)
	}
	edge, _ := daterange.New(horizon.AddDays(-2), horizon)
	if err := e.ValidateRange(edge); err != nil {
		t.Errorf("checkout exactly at horizon rejected: %v", err)
	}
}

func TestMaxCheckout(t *testing.T) {
	today := day(2025, time.August, 1)
	e := newTestEngine(today, nightlyBlock(property.Blon, day(2025, time.August, 20), day(2025, time.August, 22)))

	if _, err := e.MaxCheckout(); !errors.Is(err, ErrNoAnchor) {
		t.Fatalf("err = %v, want ErrNoAnchor", err)
	}
	if err := e.Anchor(day(2025, time.August, 15)); err != nil {
		t.Fatalf("Anchor failed: %v", err)
	}
	max, err := e.MaxCheckout()
	if err != nil {
		t.Fatalf("MaxCheckout failed: %v", err)
	}
	if !max.Equal(day(2025, time.August, 20)) {
		t.Errorf("MaxCheckout = %s, want the next check-in", max)
	}

	e.Reset()
	if err := e.Anchor(day(2025, time.August, 25)); err != nil {
		t.Fatalf("Anchor failed: %v", err)
	}
	max, err = e.MaxCheckout()
	if err != nil {
		t.Fatalf("MaxCheckout failed: %v", err)
	}
	if !max.Equal(e.Horizon()) {
		t.Errorf("MaxCheckout = %s, want the horizon", max)
	}
}
