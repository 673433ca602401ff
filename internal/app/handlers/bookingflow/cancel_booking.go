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
)

const cancelBookingKey = "booking.cancel"

type CancelBookingCommand struct {
	Session   session.Session
	BookingID string
}

func (c CancelBookingCommand) Key() string { return cancelBookingKey }

func (c CancelBookingCommand) InFlightScope() string { return c.Session.Name + "/" + c.BookingID }

type CancelBookingResult struct {
	BookingID string `json:"booking_id"`
	State     string `json:"state"`
}

type CancelBookingHandler struct {
	Profiles domainprofile.Gateway
	Gateway  domainbooking.Gateway
	Outbox   outbox.Outbox
	Encoder  outbox.EventEncoder
	Clock    func() time.Time
}

func (h *CancelBookingHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (*CancelBookingResult, error) {
	if err := cmd.Session.Validate(); err != nil {
		return nil, err
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

	// Started and past stays cannot be cancelled, same boundary as edits.
	if !b.Editable(now) {
		return nil, domainbooking.ErrNotEditable
	}
	if err := b.BeginCancel(now); err != nil {
		return nil, err
	}

	if err := h.Gateway.Cancel(ctx, cmd.Session, b.ID); err != nil {
		_ = b.Reject(err.Error(), h.now())
		return nil, err
	}
	if err := b.CompleteCancel(h.now()); err != nil {
		return nil, err
	}

	evs := b.PendingEvents()
	b.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), evs); err != nil {
		return nil, err
	}

	return &CancelBookingResult{BookingID: string(b.ID), State: string(b.State)}, nil
}

func (h *CancelBookingHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock().UTC()
	}
	return time.Now().UTC()
}

func (h *CancelBookingHandler) encoder() outbox.EventEncoder {
	if h.Encoder != nil {
		return h.Encoder
	}
	return outbox.JSONEventEncoder{}
}

var _ commands.Handler[CancelBookingCommand, *CancelBookingResult] = (*CancelBookingHandler)(nil)
var _ middleware.InFlightScoped = CancelBookingCommand{}
