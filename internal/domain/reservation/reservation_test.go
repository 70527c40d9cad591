package reservation

import (
	"errors"
	"testing"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

func testParams(t *testing.T) CreateParams {
	t.Helper()
	prop, err := property.Get(property.Forest)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	r, err := daterange.New(
		dateutil.NewDay(2025, time.November, 10),
		dateutil.NewDay(2025, time.November, 12),
	)
	if err != nil {
		t.Fatalf("New range failed: %v", err)
	}
	return CreateParams{
		ID:         "res-1",
		Property:   prop,
		Range:      r,
		GuestName:  "김철수",
		GuestPhone: "010-1234-5678",
		Party:      Party{Guests: 2},
		Price:      400000,
		Refundable: true,
		Now:        time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewRecordsCreatedEvent(t *testing.T) {
	res, err := New(testParams(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	events := res.PendingEvents()
	if len(events) != 1 || events[0].EventName() != "reservation.created" {
		t.Fatalf("events = %v, want one reservation.created", events)
	}
	if events[0].AggregateID() != "res-1" {
		t.Errorf("aggregate id = %s", events[0].AggregateID())
	}
}

func TestNewNormalizesPhone(t *testing.T) {
	params := testParams(t)
	params.GuestPhone = "010-1234-5678"
	res, err := New(params)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if res.GuestPhone != "01012345678" {
		t.Errorf("phone = %s, want digits only", res.GuestPhone)
	}
}

func TestNewRequiresGuest(t *testing.T) {
	params := testParams(t)
	params.GuestName = "  "
	if _, err := New(params); !errors.Is(err, ErrGuestRequired) {
		t.Errorf("blank name: err = %v, want ErrGuestRequired", err)
	}

	params = testParams(t)
	params.GuestPhone = "no digits here"
	if _, err := New(params); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("digitless phone: err = %v, want ErrInvalidPhone", err)
	}
}

func TestNewPartyLimits(t *testing.T) {
	params := testParams(t)
	params.Party.Guests = 0
	if _, err := New(params); !errors.Is(err, ErrInvalidParty) {
		t.Errorf("zero guests: err = %v, want ErrInvalidParty", err)
	}

	params = testParams(t)
	params.Party.Guests = 7 // forest caps at 6
	if _, err := New(params); !errors.Is(err, ErrInvalidParty) {
		t.Errorf("over cap: err = %v, want ErrInvalidParty", err)
	}
}

func TestNewRejectsUnbookableProperty(t *testing.T) {
	params := testParams(t)
	mukho, _ := property.Get(property.Mukho)
	params.Property = mukho
	if _, err := New(params); !errors.Is(err, ErrNotBookable) {
		t.Errorf("err = %v, want ErrNotBookable", err)
	}
}

func TestAutoBedding(t *testing.T) {
	params := testParams(t)
	params.Party.Guests = 5
	res, err := New(params)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if res.Bedding != 1 {
		t.Errorf("bedding = %d, want 1 for a party of five", res.Bedding)
	}

	params.Party.Guests = 4
	res, err = New(params)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if res.Bedding != 0 {
		t.Errorf("bedding = %d, want 0 for a party of four", res.Bedding)
	}
}

func TestConfirmOnlyOnce(t *testing.T) {
	res, err := New(testParams(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	now := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
	if err := res.Confirm(now); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if res.ConfirmedAt == nil || !res.ConfirmedAt.Equal(now) {
		t.Errorf("ConfirmedAt = %v, want %v", res.ConfirmedAt, now)
	}
	if err := res.Confirm(now.Add(time.Hour)); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Errorf("second Confirm: err = %v, want ErrAlreadyConfirmed", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"010-1234-5678", "01012345678"},
		{"010 1234 5678", "01012345678"},
		{"+82 10 1234 5678 999", "82101234567"}, // capped at 11 digits
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
