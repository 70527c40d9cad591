package sync

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

// statusUnavailable replaces provider-branded summaries ("Airbnb (Not
// available)" and friends) with a neutral label.
const statusUnavailable = "Not available"

var (
	reservationRefPattern = regexp.MustCompile(`Reservation URL: https://www\.airbnb\.com/hosting/reservations/details/(\w+)`)
	phoneLast4Pattern     = regexp.MustCompile(`(\d{4})\s*$`)
)

// ParseFeed turns iCalendar text into sync blocks. Events without both a
// start and an end are skipped; timestamps are normalized to Seoul
// calendar days with the same inclusive-start, exclusive-end semantics as
// internal reservations.
func ParseFeed(prop property.ID, body []byte, fetchedAt time.Time) ([]availability.Block, error) {
	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var blocks []availability.Block
	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			continue
		}
		end, err := event.GetEndAt()
		if err != nil {
			continue
		}
		r, err := daterange.New(dateutil.DayOf(start), dateutil.DayOf(end))
		if err != nil {
			continue
		}

		description := propertyValue(event, ics.ComponentPropertyDescription)
		blocks = append(blocks, availability.Block{
			Property:       prop,
			Range:          r,
			Source:         availability.SourceExternal,
			ExternalUID:    event.Id(),
			Status:         statusLabel(propertyValue(event, ics.ComponentPropertySummary)),
			ReservationRef: extractReservationRef(description),
			PhoneLast4:     extractPhoneLast4(description),
			UpdatedAt:      fetchedAt.UTC(),
		})
	}
	return blocks, nil
}

func propertyValue(event *ics.VEvent, name ics.ComponentProperty) string {
	if p := event.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

func statusLabel(summary string) string {
	if summary == "" || strings.HasPrefix(summary, "Airbnb") {
		return statusUnavailable
	}
	return summary
}

// extractReservationRef pulls the provider reservation id out of the
// reservation-detail URL embedded in the event description.
func extractReservationRef(description string) string {
	if m := reservationRefPattern.FindStringSubmatch(description); len(m) > 1 {
		return m[1]
	}
	return ""
}

// extractPhoneLast4 picks up the trailing four digits of the guest phone
// fragment the provider appends to the description.
func extractPhoneLast4(description string) string {
	if m := phoneLast4Pattern.FindStringSubmatch(strings.TrimSpace(description)); len(m) > 1 {
		return m[1]
	}
	return ""
}
