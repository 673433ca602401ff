package venue

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"venuebook/internal/domain/shared/daterange"
	"venuebook/internal/domain/shared/events"
)

var (
	ErrNameRequired  = errors.New("venue: name is required")
	ErrInvalidPrice  = errors.New("venue: nightly price must be positive")
	ErrInvalidGuests = errors.New("venue: max guests must be at least 1")
	ErrRatingRange   = errors.New("venue: rating must be between 0 and 5 in half-point steps")
	ErrVenueNotFound = errors.New("venue: not found")
)

type VenueID string

// Amenities holds the four flags the storefront filters on. The same shape
// doubles as a filter: a venue matches when its flags are a superset of the
// requested ones.
type Amenities struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Covers reports whether every flag requested in want is present.
func (a Amenities) Covers(want Amenities) bool {
	if want.Wifi && !a.Wifi {
		return false
	}
	if want.Parking && !a.Parking {
		return false
	}
	if want.Breakfast && !a.Breakfast {
		return false
	}
	if want.Pets && !a.Pets {
		return false
	}
	return true
}

func (a Amenities) Any() bool {
	return a.Wifi || a.Parking || a.Breakfast || a.Pets
}

type Location struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Lat       float64
	Lng       float64
}

type Media struct {
	URL string
	Alt string
}

// BookedStay is the back-reference a venue keeps to a reservation made
// against it: enough to detect conflicts, not an owned booking copy.
type BookedStay struct {
	ID       string
	Range    daterange.DateRange
	Guests   int
	Customer string
}

type Venue struct {
	ID          VenueID
	Name        string
	Description string
	Price       float64
	MaxGuests   int
	Rating      float64
	Amenities   Amenities
	Location    Location
	Media       []Media
	Owner       string
	Bookings    []BookedStay
	CreatedAt   time.Time
	UpdatedAt   time.Time
	events.EventRecorder
}

type CreateVenueParams struct {
	ID          VenueID
	Name        string
	Description string
	Price       float64
	MaxGuests   int
	Rating      float64
	Amenities   Amenities
	Location    Location
	Media       []Media
	Owner       string
	Bookings    []BookedStay
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewVenue(params CreateVenueParams) (*Venue, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, errors.New("venue: id is required")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if params.MaxGuests < 1 {
		return nil, ErrInvalidGuests
	}
	if !validRating(params.Rating) {
		return nil, ErrRatingRange
	}
	return &Venue{
		ID:          params.ID,
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		Price:       params.Price,
		MaxGuests:   params.MaxGuests,
		Rating:      params.Rating,
		Amenities:   params.Amenities,
		Location:    params.Location,
		Media:       append([]Media(nil), params.Media...),
		Owner:       strings.TrimSpace(params.Owner),
		Bookings:    append([]BookedStay(nil), params.Bookings...),
		CreatedAt:   params.CreatedAt.UTC(),
		UpdatedAt:   params.UpdatedAt.UTC(),
	}, nil
}

func validRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := r * 2
	return doubled == math.Trunc(doubled)
}

// CanHost reports whether the venue accommodates the requested party size.
func (v *Venue) CanHost(guests int) bool {
	return guests >= 1 && guests <= v.MaxGuests
}

func (v *Venue) OwnedBy(profileName string) bool {
	return v.Owner != "" && v.Owner == profileName
}

// PageMeta describes server-side pagination. Search responses carry none,
// so a page's Meta may be nil and callers must treat that as "no further
// pages known".
type PageMeta struct {
	Page       int
	PageSize   int
	PageCount  int
	TotalCount int
}

type Page struct {
	Items []*Venue
	Meta  *PageMeta
}

// Catalog is the read side of the remote venue service.
type Catalog interface {
	FetchPage(ctx context.Context, params RequestParams) (Page, error)
	VenueByID(ctx context.Context, id VenueID) (*Venue, error)
}
