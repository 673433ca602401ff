package bookingflow

import (
	"context"
	"time"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/middleware"
	"venuebook/internal/app/outbox"
	domainbooking "venuebook/internal/domain/booking"
	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
	domainvenue "venuebook/internal/domain/venue"
)

const updateGuestsKey = "booking.update_guests"

type UpdateGuestsCommand struct {
	Session   session.Session
	BookingID string
	Guests    int
}

func (c UpdateGuestsCommand) Key() string { return updateGuestsKey }

// InFlightScope keeps the busy flag per profile and booking: edits to two
// different bookings never block each other.
func (c UpdateGuestsCommand) InFlightScope() string { return c.Session.Name + "/" + c.BookingID }

type UpdateGuestsResult struct {
	BookingID string `json:"booking_id"`
	Guests    int    `json:"guests"`
}

type UpdateGuestsHandler struct {
	Profiles domainprofile.Gateway
	Catalog  domainvenue.Catalog
	Gateway  domainbooking.Gateway
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Clock    func() time.Time
}

func (h *UpdateGuestsHandler) Handle(ctx context.Context, cmd UpdateGuestsCommand) (*UpdateGuestsResult, error) {
	if err := cmd.Session.Validate(); err != nil {
		return nil, err
	}
	// Guest bounds fail before any fetch; a zero or negative count never
	// costs a network round trip.
	if cmd.Guests < 1 {
		return nil, domainbooking.ErrInvalidGuestCount
	}
	now := h.now()

	prof, err := h.Profiles.ByName(ctx, cmd.Session, cmd.Session.Name)
	if err != nil {
		return nil, err
	}
	entry, ok := prof.FindBooking(domainbooking.BookingID(cmd.BookingID))
	if !ok {
		return nil, domainbooking.ErrBookingNotFound
	}
	b := entry.Booking

	maxGuests, err := h.capacity(ctx, entry)
	if err != nil {
		return nil, err
	}
	if err := b.ChangeGuests(cmd.Guests, maxGuests, now); err != nil {
		return nil, err
	}

	if _, err := h.Gateway.UpdateGuests(ctx, cmd.Session, b.ID, cmd.Guests); err != nil {
		return nil, err
	}

	evs := b.PendingEvents()
	b.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), evs); err != nil {
		return nil, err
	}

	return &UpdateGuestsResult{BookingID: string(b.ID), Guests: b.Guests}, nil
}

// capacity prefers the venue snapshot embedded in the booking fetch and
// falls back to a catalog lookup when the snapshot is missing.
func (h *UpdateGuestsHandler) capacity(ctx context.Context, entry domainprofile.BookingEntry) (int, error) {
	if entry.Venue != nil {
		return entry.Venue.MaxGuests, nil
	}
	v, err := h.Catalog.VenueByID(ctx, entry.Booking.VenueID)
	if err != nil {
		return 0, err
	}
	return v.MaxGuests, nil
}

func (h *UpdateGuestsHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock().UTC()
	}
	return time.Now().UTC()
}

func (h *UpdateGuestsHandler) encoder() outbox.EventEncoder {
	if h.Encoder != nil {
		return h.Encoder
	}
	return outbox.JSONEventEncoder{}
}

var _ commands.Handler[UpdateGuestsCommand, *UpdateGuestsResult] = (*UpdateGuestsHandler)(nil)
var _ middleware.InFlightScoped = UpdateGuestsCommand{}
