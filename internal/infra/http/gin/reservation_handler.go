package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	bookingapp "namunjari/internal/app/booking"
	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/dateutil"
)

type ReservationHandler struct {
	Booking *bookingapp.Service
}

// stayRequest is the guest submission. The stay fields used depend on the
// property's booking mode; the rest may be zero.
type stayRequest struct {
	CheckIn  dateutil.Day `json:"check_in"`
	CheckOut dateutil.Day `json:"check_out"`
	Date     dateutil.Day `json:"date"`
	Hours    []int        `json:"hours"`
	Weeks    int          `json:"weeks"`

	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Guests     int    `json:"guests"`
	Infants    int    `json:"infants"`
	Pets       int    `json:"pets"`
	Barbecue   bool   `json:"barbecue"`
	Purpose    string `json:"purpose"`
	Refundable bool   `json:"refundable"`
}

func (r stayRequest) toRequest(prop property.ID) bookingapp.Request {
	return bookingapp.Request{
		Property:   prop,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Date:       r.Date,
		Hours:      r.Hours,
		Weeks:      r.Weeks,
		GuestName:  r.Name,
		GuestPhone: r.Phone,
		Guests:     r.Guests,
		Infants:    r.Infants,
		Pets:       r.Pets,
		Barbecue:   r.Barbecue,
		Purpose:    r.Purpose,
		Refundable: r.Refundable,
	}
}

type quoteLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type quoteResponse struct {
	Base       int64       `json:"base"`
	Surcharges []quoteLine `json:"surcharges,omitempty"`
	Discount   int64       `json:"discount,omitempty"`
	Deposit    int64       `json:"deposit,omitempty"`
	Total      int64       `json:"total"`
}

func toQuoteResponse(q pricing.Quote) quoteResponse {
	resp := quoteResponse{
		Base:     int64(q.Base),
		Discount: int64(q.Discount),
		Deposit:  int64(q.Deposit),
		Total:    int64(q.Total),
	}
	for _, l := range q.Surcharges {
		resp.Surcharges = append(resp.Surcharges, quoteLine{Label: l.Label, Amount: int64(l.Amount)})
	}
	return resp
}

type reservationResponse struct {
	ID          string        `json:"id"`
	Property    string        `json:"property"`
	Quote       quoteResponse `json:"quote"`
	BankAccount string        `json:"bank_account"`
}

// Quote prices a stay without persisting anything.
func (h ReservationHandler) Quote(c *gin.Context) {
	var body stayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quote, err := h.Booking.Quote(c.Request.Context(), body.toRequest(property.ID(c.Param("property"))))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// Create validates and persists a reservation. The guest gets back the
// amount and account to transfer the deposit to.
func (h ReservationHandler) Create(c *gin.Context) {
	var body stayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	propID := property.ID(c.Param("property"))
	res, quote, err := h.Booking.Create(c.Request.Context(), body.toRequest(propID))
	if err != nil {
		writeError(c, err)
		return
	}
	prop, _ := property.Get(propID)
	c.JSON(http.StatusCreated, reservationResponse{
		ID:          string(res.ID),
		Property:    string(res.Property),
		Quote:       toQuoteResponse(quote),
		BankAccount: prop.BankAccount,
	})
}

var _ ReservationHTTP = ReservationHandler{}

// reservationView is the admin-facing rendering of one reservation.
type reservationView struct {
	ID         string `json:"id"`
	Period     string `json:"period"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Guests     int    `json:"guests"`
	Infants    int    `json:"infants"`
	Pets       int    `json:"pets"`
	Bedding    int    `json:"bedding"`
	Barbecue   bool   `json:"barbecue"`
	Purpose    string `json:"purpose,omitempty"`
	Price      int64  `json:"price"`
	Refundable bool   `json:"refundable"`
	Confirmed  bool   `json:"confirmed"`
}

func toReservationView(r *reservation.Reservation) reservationView {
	period := r.Range.CheckIn.String() + "," + r.Range.CheckOut.String()
	if r.Hours != nil {
		period = r.Hours.String()
	}
	return reservationView{
		ID:         string(r.ID),
		Period:     period,
		Name:       r.GuestName,
		Phone:      r.GuestPhone,
		Guests:     r.Party.Guests,
		Infants:    r.Party.Infants,
		Pets:       r.Party.Pets,
		Bedding:    r.Bedding,
		Barbecue:   r.Barbecue,
		Purpose:    r.Purpose,
		Price:      int64(r.Price),
		Refundable: r.Refundable,
		Confirmed:  r.ConfirmedAt != nil,
	}
}
