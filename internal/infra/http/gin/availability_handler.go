package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	availabilityapp "namunjari/internal/app/availability"
	domainavailability "namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/dateutil"
)

type AvailabilityHandler struct {
	Availability *availabilityapp.Service
	Now          func() dateutil.Day
}

type dayCell struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type blockedHours struct {
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

type calendarResponse struct {
	Property     string         `json:"property"`
	Today        string         `json:"today"`
	Horizon      string         `json:"horizon"`
	Degraded     bool           `json:"degraded"`
	Days         []dayCell      `json:"days"`
	BlockedHours []blockedHours `json:"blocked_hours,omitempty"`
}

// Calendar returns the merged availability picture for one property: a
// state per day out to the booking horizon, plus blocked hours for the
// hourly space.
func (h AvailabilityHandler) Calendar(c *gin.Context) {
	prop, err := property.Get(property.ID(c.Param("property")))
	if err != nil {
		writeError(c, err)
		return
	}

	today := h.Now()
	cal, err := h.Availability.Load(c.Request.Context(), prop.ID, today)
	if err != nil {
		writeError(c, err)
		return
	}
	engine := domainavailability.NewEngine(cal, today)

	horizon := engine.Horizon()
	resp := calendarResponse{
		Property: string(prop.ID),
		Today:    today.String(),
		Horizon:  horizon.String(),
		Degraded: cal.Degraded,
	}
	for d := today; !d.After(horizon); d = d.AddDays(1) {
		resp.Days = append(resp.Days, dayCell{Date: d.String(), State: engine.CellState(d).String()})
	}
	if prop.Mode == property.ModeHourly {
		for _, hr := range cal.HourBlocks() {
			resp.BlockedHours = append(resp.BlockedHours, blockedHours{
				Day:       hr.Day.String(),
				StartHour: hr.StartHour,
				EndHour:   hr.EndHour,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}

var _ AvailabilityHTTP = AvailabilityHandler{}
