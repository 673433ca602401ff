package bookingflow

import (
	"context"
	"time"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/middleware"
	"venuebook/internal/app/outbox"
	domainbooking "venuebook/internal/domain/booking"
	"venuebook/internal/domain/session"
	domainrange "venuebook/internal/domain/shared/daterange"
	domainvenue "venuebook/internal/domain/venue"
)

const createBookingKey = "booking.create"

type CreateBookingCommand struct {
	Session         session.Session
	VenueID         string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	IdempotencyKeyV string
}

func (c CreateBookingCommand) Key() string { return createBookingKey }

// InFlightScope keys the busy flag by profile: one profile submits one
// booking at a time, different profiles never block each other.
func (c CreateBookingCommand) InFlightScope() string { return c.Session.Name }

func (c CreateBookingCommand) IdempotencyKey() string { return c.IdempotencyKeyV }

func (c CreateBookingCommand) ResultPrototype() any { return &CreateBookingResult{} }

type CreateBookingResult struct {
	BookingID string    `json:"booking_id"`
	Nights    int       `json:"nights"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookingHandler runs the full reservation flow: local validation,
// a fresh availability check against the venue's calendar, quoting, then a
// single submission to the remote service. Remote failure leaves a Draft
// behind so the traveler can retry explicitly; nothing retries on its own.
type CreateBookingHandler struct {
	Catalog domainvenue.Catalog
	Gateway domainbooking.Gateway
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Clock   func() time.Time
}

func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	if err := cmd.Session.Validate(); err != nil {
		return nil, err
	}
	now := h.now()

	stay, err := domainrange.New(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}
	draft, err := domainbooking.NewDraft(domainbooking.DraftParams{
		VenueID:  domainvenue.VenueID(cmd.VenueID),
		Customer: cmd.Session.Name,
		Range:    stay,
		Guests:   cmd.Guests,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}

	// The calendar is re-fetched at submit time: the detail page the
	// traveler looked at may be minutes stale.
	v, err := h.Catalog.VenueByID(ctx, draft.VenueID)
	if err != nil {
		return nil, err
	}
	if err := domainbooking.ValidateGuests(draft.Guests, v); err != nil {
		return nil, err
	}
	if !domainbooking.IsAvailable(draft.Range, v.Bookings) {
		return nil, domainbooking.ErrUnavailable
	}
	quote := domainbooking.QuoteStay(draft.Range, v.Price)

	if err := draft.Submit(now); err != nil {
		return nil, err
	}
	receipt, err := h.Gateway.Create(ctx, cmd.Session, domainbooking.CreateRequest{
		VenueID: draft.VenueID,
		Range:   draft.Range,
		Guests:  draft.Guests,
	})
	if err != nil {
		rejectAt := h.now()
		_ = draft.Reject(err.Error(), rejectAt)
		_ = draft.Reopen(rejectAt)
		return nil, err
	}
	if err := draft.Confirm(receipt.ID, quote.Total, h.now()); err != nil {
		return nil, err
	}

	evs := draft.PendingEvents()
	draft.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), evs); err != nil {
		return nil, err
	}

	return &CreateBookingResult{
		BookingID: string(receipt.ID),
		Nights:    quote.Nights,
		Total:     quote.Total,
		CreatedAt: receipt.CreatedAt,
	}, nil
}

func (h *CreateBookingHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock().UTC()
	}
	return time.Now().UTC()
}

func (h *CreateBookingHandler) encoder() outbox.EventEncoder {
	if h.Encoder != nil {
		return h.Encoder
	}
	return outbox.JSONEventEncoder{}
}

var _ commands.Handler[CreateBookingCommand, *CreateBookingResult] = (*CreateBookingHandler)(nil)
var _ middleware.IdempotentCommand = CreateBookingCommand{}
var _ middleware.InFlightScoped = CreateBookingCommand{}
