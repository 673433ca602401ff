package booking

import (
	"time"

	"venuebook/internal/domain/shared/daterange"
	"venuebook/internal/domain/venue"
)

type BookingConfirmed struct {
	BookingID BookingID
	VenueID   venue.VenueID
	Customer  string
	Range     daterange.DateRange
	Guests    int
	Total     float64
	At        time.Time
}

func (e BookingConfirmed) EventName() string     { return "booking.confirmed" }
func (e BookingConfirmed) AggregateID() string   { return string(e.BookingID) }
func (e BookingConfirmed) OccurredAt() time.Time { return e.At }

type BookingGuestsUpdated struct {
	BookingID BookingID
	VenueID   venue.VenueID
	Guests    int
	At        time.Time
}

func (e BookingGuestsUpdated) EventName() string     { return "booking.guests_updated" }
func (e BookingGuestsUpdated) AggregateID() string   { return string(e.BookingID) }
func (e BookingGuestsUpdated) OccurredAt() time.Time { return e.At }

type BookingCancelled struct {
	BookingID BookingID
	VenueID   venue.VenueID
	Customer  string
	At        time.Time
}

func (e BookingCancelled) EventName() string     { return "booking.cancelled" }
func (e BookingCancelled) AggregateID() string   { return string(e.BookingID) }
func (e BookingCancelled) OccurredAt() time.Time { return e.At }
