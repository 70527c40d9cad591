package sync

import (
	"strings"
	"testing"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
)

func feedBody(events ...string) []byte {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Airbnb Inc//Hosting Calendar 1.0//EN",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

const reservedEvent = `BEGIN:VEVENT
DTSTART;VALUE=DATE:20250810
DTEND;VALUE=DATE:20250812
UID:1418fb93ff39-0a12@airbnb.com
SUMMARY:Airbnb (Not available)
DESCRIPTION:Reservation URL: https://www.airbnb.com/hosting/reservations/details/HMABC123\nPhone Number (Last 4 Digits): 5678
END:VEVENT`

func TestParseFeedExtractsBlock(t *testing.T) {
	fetchedAt := time.Date(2025, 8, 1, 3, 0, 0, 0, time.UTC)
	body := feedBody(strings.Split(reservedEvent, "\n")...)

	blocks, err := ParseFeed(property.Forest, body, fetchedAt)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	b := blocks[0]
	if !b.Range.CheckIn.Equal(dateutil.NewDay(2025, time.August, 10)) ||
		!b.Range.CheckOut.Equal(dateutil.NewDay(2025, time.August, 12)) {
		t.Errorf("range = %s..%s", b.Range.CheckIn, b.Range.CheckOut)
	}
	if b.ExternalUID != "1418fb93ff39-0a12@airbnb.com" {
		t.Errorf("uid = %s", b.ExternalUID)
	}
	if b.Status != "Not available" {
		t.Errorf("status = %q, want the neutral label", b.Status)
	}
	if b.ReservationRef != "HMABC123" {
		t.Errorf("reservation ref = %q, want HMABC123", b.ReservationRef)
	}
	if b.PhoneLast4 != "5678" {
		t.Errorf("phone last4 = %q, want 5678", b.PhoneLast4)
	}
	if !b.UpdatedAt.Equal(fetchedAt) {
		t.Errorf("updated at = %v, want fetch time", b.UpdatedAt)
	}
}

func TestParseFeedSkipsIncompleteEvents(t *testing.T) {
	noEnd := []string{
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20250810",
		"UID:broken@airbnb.com",
		"END:VEVENT",
	}
	blocks, err := ParseFeed(property.Forest, feedBody(noEnd...), time.Now())
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("blocks = %d, want incomplete event skipped", len(blocks))
	}
}

func TestParseFeedKeepsCustomSummary(t *testing.T) {
	ev := []string{
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20250901",
		"DTEND;VALUE=DATE:20250903",
		"UID:manual@host",
		"SUMMARY:Maintenance",
		"END:VEVENT",
	}
	blocks, err := ParseFeed(property.Blon, feedBody(ev...), time.Now())
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Status != "Maintenance" {
		t.Errorf("blocks = %+v, want one with Maintenance status", blocks)
	}
}

func TestParseFeedRejectsGarbage(t *testing.T) {
	if _, err := ParseFeed(property.Forest, []byte("not a calendar"), time.Now()); err == nil {
		t.Fatal("expected parse error")
	}
}
