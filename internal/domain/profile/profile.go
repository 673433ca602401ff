package profile

import (
	"context"
	"errors"
	"strings"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/session"
	"venuebook/internal/domain/venue"
)

var (
	ErrNameRequired    = errors.New("profile: name is required")
	ErrProfileNotFound = errors.New("profile: not found")
)

// BookingEntry pairs a customer booking with the venue snapshot the fetch
// embedded. The snapshot is display data only: venue changes show up by
// re-fetching, never by editing the copy.
type BookingEntry struct {
	Booking *booking.Booking
	Venue   *venue.Venue
}

type Profile struct {
	Name         string
	Email        string
	Bio          string
	Avatar       venue.Media
	Banner       venue.Media
	VenueManager bool
	Venues       []*venue.Venue
	Bookings     []BookingEntry
}

func New(name, email string, venueManager bool) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Profile{Name: name, Email: strings.TrimSpace(email), VenueManager: venueManager}, nil
}

func (p *Profile) FindBooking(id booking.BookingID) (BookingEntry, bool) {
	for _, entry := range p.Bookings {
		if entry.Booking != nil && entry.Booking.ID == id {
			return entry, true
		}
	}
	return BookingEntry{}, false
}

// Gateway is the remote profile read side. Both calls require the
// caller's own session; the service rejects cross-profile reads.
type Gateway interface {
	ByName(ctx context.Context, sess session.Session, name string) (*Profile, error)
	VenuesByName(ctx context.Context, sess session.Session, name string) ([]*venue.Venue, error)
}
