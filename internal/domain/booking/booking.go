package booking

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain/session"
	"venuebook/internal/domain/shared/daterange"
	"venuebook/internal/domain/shared/events"
	"venuebook/internal/domain/venue"
)

var (
	ErrInvalidGuestCount = errors.New("booking: guest count out of bounds")
	ErrInvalidState      = errors.New("booking: invalid state transition")
	ErrZeroNights        = errors.New("booking: stay must cover at least one night")
	ErrUnavailable       = errors.New("booking: requested dates are unavailable")
	ErrNotEditable       = errors.New("booking: only future bookings can be changed")
	ErrNotOwner          = errors.New("booking: booking belongs to another profile")
	ErrBookingNotFound   = errors.New("booking: not found")
)

type BookingID string

// BookingState tracks the client-side lifecycle. Draft exists only
// locally: dates and guests are chosen but nothing has been submitted.
type BookingState string

const (
	StateDraft      BookingState = "DRAFT"
	StatePending    BookingState = "PENDING"
	StateConfirmed  BookingState = "CONFIRMED"
	StateFailed     BookingState = "FAILED"
	StateCancelling BookingState = "CANCELLING"
	StateCancelled  BookingState = "CANCELLED"
)

type Booking struct {
	ID            BookingID
	VenueID       venue.VenueID
	Customer      string
	Range         daterange.DateRange
	Guests        int
	State         BookingState
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	events.EventRecorder
}

type DraftParams struct {
	VenueID  venue.VenueID
	Customer string
	Range    daterange.DateRange
	Guests   int
	Now      time.Time
}

// NewDraft validates the locally chosen stay before anything leaves the
// process. The one-night minimum lives here: the availability check alone
// would happily accept a same-day range.
func NewDraft(params DraftParams) (*Booking, error) {
	if err := params.Range.Validate(); err != nil {
		return nil, err
	}
	if params.Range.Nights() < 1 {
		return nil, ErrZeroNights
	}
	if params.Guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if params.Customer == "" {
		return nil, errors.New("booking: customer profile required")
	}
	now := params.Now.UTC()
	return &Booking{
		VenueID:   params.VenueID,
		Customer:  params.Customer,
		Range:     params.Range,
		Guests:    params.Guests,
		State:     StateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Submit marks the draft as sent to the remote service.
func (b *Booking) Submit(now time.Time) error {
	if b.State != StateDraft {
		return ErrInvalidState
	}
	b.State = StatePending
	b.UpdatedAt = now.UTC()
	return nil
}

// Confirm records remote acceptance along with the id the service issued.
func (b *Booking) Confirm(id BookingID, total float64, now time.Time) error {
	if b.State != StatePending {
		return ErrInvalidState
	}
	b.ID = id
	b.State = StateConfirmed
	b.UpdatedAt = now.UTC()
	b.Record(BookingConfirmed{
		BookingID: b.ID,
		VenueID:   b.VenueID,
		Customer:  b.Customer,
		Range:     b.Range,
		Guests:    b.Guests,
		Total:     total,
		At:        b.UpdatedAt,
	})
	return nil
}

// Reject records a remote rejection; the reason is kept verbatim for the
// caller to surface.
func (b *Booking) Reject(reason string, now time.Time) error {
	if b.State != StatePending && b.State != StateCancelling {
		return ErrInvalidState
	}
	b.State = StateFailed
	b.FailureReason = reason
	b.UpdatedAt = now.UTC()
	return nil
}

// Reopen returns a failed submission to Draft so the traveler can retry
// with a fresh explicit action.
func (b *Booking) Reopen(now time.Time) error {
	if b.State != StateFailed {
		return ErrInvalidState
	}
	b.State = StateDraft
	b.FailureReason = ""
	b.UpdatedAt = now.UTC()
	return nil
}

// BeginCancel moves a confirmed booking into the in-flight cancel state.
func (b *Booking) BeginCancel(now time.Time) error {
	if b.State != StateConfirmed {
		return ErrInvalidState
	}
	b.State = StateCancelling
	b.UpdatedAt = now.UTC()
	return nil
}

// CompleteCancel is irreversible.
func (b *Booking) CompleteCancel(now time.Time) error {
	if b.State != StateCancelling {
		return ErrInvalidState
	}
	b.State = StateCancelled
	b.UpdatedAt = now.UTC()
	b.Record(BookingCancelled{BookingID: b.ID, VenueID: b.VenueID, Customer: b.Customer, At: b.UpdatedAt})
	return nil
}

// Editable reports whether the customer may still change or cancel the
// booking: only confirmed stays that have not started. Ongoing and past
// bookings are read-only; this boundary is enforced here, not remotely.
func (b *Booking) Editable(now time.Time) bool {
	return b.State == StateConfirmed && b.Range.From.After(now.UTC())
}

// ChangeGuests applies a guest-count mutation after local validation
// against the venue's capacity.
func (b *Booking) ChangeGuests(guests, maxGuests int, now time.Time) error {
	if !b.Editable(now) {
		return ErrNotEditable
	}
	if guests < 1 || guests > maxGuests {
		return ErrInvalidGuestCount
	}
	b.Guests = guests
	b.UpdatedAt = now.UTC()
	b.Record(BookingGuestsUpdated{BookingID: b.ID, VenueID: b.VenueID, Guests: guests, At: b.UpdatedAt})
	return nil
}

// CreateRequest is the outbound payload for one booking creation attempt.
type CreateRequest struct {
	VenueID venue.VenueID
	Range   daterange.DateRange
	Guests  int
}

// Receipt is the remote service's record of a committed booking.
type Receipt struct {
	ID        BookingID
	VenueID   venue.VenueID
	Range     daterange.DateRange
	Guests    int
	CreatedAt time.Time
}

// Gateway is the write side of the remote booking service. Every call is
// a single attempt: failures are terminal and surface to the caller.
type Gateway interface {
	Create(ctx context.Context, sess session.Session, req CreateRequest) (Receipt, error)
	UpdateGuests(ctx context.Context, sess session.Session, id BookingID, guests int) (Receipt, error)
	Cancel(ctx context.Context, sess session.Session, id BookingID) error
}
