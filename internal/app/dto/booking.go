package dto

import (
	"time"

	"venuebook/internal/domain/profile"
)

type BookingView struct {
	ID        string        `json:"id"`
	VenueID   string        `json:"venue_id"`
	VenueName string        `json:"venue_name,omitempty"`
	DateFrom  time.Time     `json:"date_from"`
	DateTo    time.Time     `json:"date_to"`
	Guests    int           `json:"guests"`
	State     string        `json:"state"`
	IsOngoing bool          `json:"is_ongoing"`
	Editable  bool          `json:"editable"`
	Venue     *VenueSummary `json:"venue,omitempty"`
}

func MapBookingView(entry profile.BookingEntry, now time.Time) BookingView {
	b := entry.Booking
	if b == nil {
		return BookingView{}
	}
	view := BookingView{
		ID:        string(b.ID),
		VenueID:   string(b.VenueID),
		DateFrom:  b.Range.From,
		DateTo:    b.Range.To,
		Guests:    b.Guests,
		State:     string(b.State),
		IsOngoing: profile.IsOngoing(b, now),
		Editable:  b.Editable(now),
	}
	if entry.Venue != nil {
		summary := MapVenueSummary(entry.Venue)
		view.VenueName = summary.Name
		view.Venue = &summary
	}
	return view
}
