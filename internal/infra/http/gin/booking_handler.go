package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/handlers/bookingflow"
)

// BookingHandler wires the booking commands to HTTP.
type BookingHandler struct {
	Commands commands.Bus
}

type createBookingRequest struct {
	VenueID  string    `json:"venue_id" binding:"required"`
	DateFrom time.Time `json:"date_from" binding:"required"`
	DateTo   time.Time `json:"date_to" binding:"required"`
	Guests   int       `json:"guests" binding:"required"`
}

func (h BookingHandler) Create(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingflow.CreateBookingCommand{
		Session:         sess,
		VenueID:         req.VenueID,
		CheckIn:         req.DateFrom,
		CheckOut:        req.DateTo,
		Guests:          req.Guests,
		IdempotencyKeyV: c.GetHeader("Idempotency-Key"),
	}
	result, err := commands.Dispatch[bookingflow.CreateBookingCommand, *bookingflow.CreateBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type updateGuestsRequest struct {
	Guests int `json:"guests"`
}

func (h BookingHandler) UpdateGuests(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req updateGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingflow.UpdateGuestsCommand{
		Session:   sess,
		BookingID: c.Param("id"),
		Guests:    req.Guests,
	}
	result, err := commands.Dispatch[bookingflow.UpdateGuestsCommand, *bookingflow.UpdateGuestsResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) Cancel(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	cmd := bookingflow.CancelBookingCommand{
		Session:   sess,
		BookingID: c.Param("id"),
	}
	result, err := commands.Dispatch[bookingflow.CancelBookingCommand, *bookingflow.CancelBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ BookingHTTP = BookingHandler{}
