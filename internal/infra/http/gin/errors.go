package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/daterange"
)

// writeError maps domain errors onto HTTP statuses. Unknown errors stay
// opaque 500s so internals never leak to guests.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, property.ErrUnknownProperty),
		errors.Is(err, reservation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, availability.ErrOverlap),
		errors.Is(err, availability.ErrHourBlocked),
		errors.Is(err, reservation.ErrAlreadyConfirmed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, availability.ErrOutsideWindow),
		errors.Is(err, availability.ErrDayNotSelectable),
		errors.Is(err, availability.ErrZeroLength),
		errors.Is(err, availability.ErrNoHours),
		errors.Is(err, availability.ErrHoursNotContiguous),
		errors.Is(err, availability.ErrHourOutOfDay),
		errors.Is(err, availability.ErrInvalidWeeks),
		errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, daterange.ErrInvalidHourRange),
		errors.Is(err, reservation.ErrGuestRequired),
		errors.Is(err, reservation.ErrInvalidPhone),
		errors.Is(err, reservation.ErrInvalidParty),
		errors.Is(err, reservation.ErrMissingStay),
		errors.Is(err, reservation.ErrNotBookable),
		errors.Is(err, pricing.ErrInvalidStay),
		errors.Is(err, pricing.ErrNoRateTable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
