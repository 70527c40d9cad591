package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	bookingapp "namunjari/internal/app/booking"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
)

type AdminHandler struct {
	Booking *bookingapp.Service
}

type syncBlockView struct {
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Status         string `json:"status,omitempty"`
	ReservationRef string `json:"reservation_ref,omitempty"`
	PhoneLast4     string `json:"phone_last4,omitempty"`
}

type overviewResponse struct {
	Property     string            `json:"property"`
	Degraded     bool              `json:"degraded"`
	Reservations []reservationView `json:"reservations"`
	SyncBlocks   []syncBlockView   `json:"sync_blocks"`
}

// Overview lists upcoming occupancy for the operator: site reservations
// alongside blocks imported from external calendars.
func (h AdminHandler) Overview(c *gin.Context) {
	overview, err := h.Booking.AdminOverview(c.Request.Context(), property.ID(c.Param("property")))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := overviewResponse{
		Property:     string(overview.Property),
		Degraded:     overview.Degraded,
		Reservations: make([]reservationView, 0, len(overview.Reservations)),
		SyncBlocks:   make([]syncBlockView, 0, len(overview.SyncBlocks)),
	}
	for _, r := range overview.Reservations {
		resp.Reservations = append(resp.Reservations, toReservationView(r))
	}
	for _, b := range overview.SyncBlocks {
		resp.SyncBlocks = append(resp.SyncBlocks, syncBlockView{
			CheckIn:        b.Range.CheckIn.String(),
			CheckOut:       b.Range.CheckOut.String(),
			Status:         b.Status,
			ReservationRef: b.ReservationRef,
			PhoneLast4:     b.PhoneLast4,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Confirm marks a reservation's deposit as verified.
func (h AdminHandler) Confirm(c *gin.Context) {
	prop := property.ID(c.Param("property"))
	id := reservation.ID(c.Param("id"))
	if err := h.Booking.Confirm(c.Request.Context(), prop, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": true})
}

// Delete removes a reservation, freeing its dates.
func (h AdminHandler) Delete(c *gin.Context) {
	prop := property.ID(c.Param("property"))
	id := reservation.ID(c.Param("id"))
	if err := h.Booking.Delete(c.Request.Context(), prop, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ AdminHTTP = AdminHandler{}
