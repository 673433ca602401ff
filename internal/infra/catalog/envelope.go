package catalog

import (
	"time"

	domainbooking "venuebook/internal/domain/booking"
	domainprofile "venuebook/internal/domain/profile"
	domainrange "venuebook/internal/domain/shared/daterange"
	domainvenue "venuebook/internal/domain/venue"
)

// Wire documents mirror the remote service's JSON. Mapping is lenient:
// the service is the source of truth, so its data is taken as-is rather
// than pushed through local constructors that could reject it.

type listEnvelope[T any] struct {
	Data []T      `json:"data"`
	Meta *metaDoc `json:"meta"`
}

type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

type metaDoc struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	PageCount   int `json:"pageCount"`
	TotalCount  int `json:"totalCount"`
}

type mediaDoc struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type locationDoc struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type amenitiesDoc struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type ownerDoc struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type stayDoc struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Customer *ownerDoc `json:"customer"`
}

type venueDoc struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Rating      float64      `json:"rating"`
	Created     time.Time    `json:"created"`
	Updated     time.Time    `json:"updated"`
	Meta        amenitiesDoc `json:"meta"`
	Location    locationDoc  `json:"location"`
	Media       []mediaDoc   `json:"media"`
	Owner       *ownerDoc    `json:"owner"`
	Bookings    []stayDoc    `json:"bookings"`
}

type bookingDoc struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Customer *ownerDoc `json:"customer"`
	Venue    *venueDoc `json:"venue"`
}

type profileDoc struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio"`
	Avatar       mediaDoc     `json:"avatar"`
	Banner       mediaDoc     `json:"banner"`
	VenueManager bool         `json:"venueManager"`
	Venues       []venueDoc   `json:"venues"`
	Bookings     []bookingDoc `json:"bookings"`
}

type createBookingBody struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId"`
}

type updateBookingBody struct {
	Guests int `json:"guests"`
}

func (d venueDoc) toDomain() *domainvenue.Venue {
	media := make([]domainvenue.Media, 0, len(d.Media))
	for _, m := range d.Media {
		media = append(media, domainvenue.Media{URL: m.URL, Alt: m.Alt})
	}
	stays := make([]domainvenue.BookedStay, 0, len(d.Bookings))
	for _, s := range d.Bookings {
		stays = append(stays, s.toStay())
	}
	owner := ""
	if d.Owner != nil {
		owner = d.Owner.Name
	}
	return &domainvenue.Venue{
		ID:          domainvenue.VenueID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		MaxGuests:   d.MaxGuests,
		Rating:      d.Rating,
		Amenities: domainvenue.Amenities{
			Wifi:      d.Meta.Wifi,
			Parking:   d.Meta.Parking,
			Breakfast: d.Meta.Breakfast,
			Pets:      d.Meta.Pets,
		},
		Location: domainvenue.Location{
			Address:   d.Location.Address,
			City:      d.Location.City,
			Zip:       d.Location.Zip,
			Country:   d.Location.Country,
			Continent: d.Location.Continent,
			Lat:       d.Location.Lat,
			Lng:       d.Location.Lng,
		},
		Media:     media,
		Owner:     owner,
		Bookings:  stays,
		CreatedAt: d.Created,
		UpdatedAt: d.Updated,
	}
}

func (s stayDoc) toStay() domainvenue.BookedStay {
	customer := ""
	if s.Customer != nil {
		customer = s.Customer.Name
	}
	return domainvenue.BookedStay{
		ID:       s.ID,
		Range:    domainrange.DateRange{From: s.DateFrom, To: s.DateTo},
		Guests:   s.Guests,
		Customer: customer,
	}
}

func (m *metaDoc) toDomain() *domainvenue.PageMeta {
	if m == nil {
		return nil
	}
	return &domainvenue.PageMeta{
		Page:       m.CurrentPage,
		PageSize:   m.PageSize,
		PageCount:  m.PageCount,
		TotalCount: m.TotalCount,
	}
}

func (d bookingDoc) toReceipt() domainbooking.Receipt {
	venueID := domainvenue.VenueID("")
	if d.Venue != nil {
		venueID = domainvenue.VenueID(d.Venue.ID)
	}
	return domainbooking.Receipt{
		ID:        domainbooking.BookingID(d.ID),
		VenueID:   venueID,
		Range:     domainrange.DateRange{From: d.DateFrom, To: d.DateTo},
		Guests:    d.Guests,
		CreatedAt: d.Created,
	}
}

// toEntry rebuilds a confirmed booking from the remote record. The remote
// service only stores committed bookings, so everything it returns maps to
// the confirmed state.
func (d bookingDoc) toEntry(customer string) domainprofile.BookingEntry {
	if d.Customer != nil && d.Customer.Name != "" {
		customer = d.Customer.Name
	}
	b := &domainbooking.Booking{
		ID:        domainbooking.BookingID(d.ID),
		Customer:  customer,
		Range:     domainrange.DateRange{From: d.DateFrom, To: d.DateTo},
		Guests:    d.Guests,
		State:     domainbooking.StateConfirmed,
		CreatedAt: d.Created,
		UpdatedAt: d.Updated,
	}
	entry := domainprofile.BookingEntry{Booking: b}
	if d.Venue != nil {
		entry.Venue = d.Venue.toDomain()
		b.VenueID = entry.Venue.ID
	}
	return entry
}

func (d profileDoc) toDomain() *domainprofile.Profile {
	prof := &domainprofile.Profile{
		Name:         d.Name,
		Email:        d.Email,
		Bio:          d.Bio,
		Avatar:       domainvenue.Media{URL: d.Avatar.URL, Alt: d.Avatar.Alt},
		Banner:       domainvenue.Media{URL: d.Banner.URL, Alt: d.Banner.Alt},
		VenueManager: d.VenueManager,
	}
	for _, v := range d.Venues {
		prof.Venues = append(prof.Venues, v.toDomain())
	}
	for _, b := range d.Bookings {
		prof.Bookings = append(prof.Bookings, b.toEntry(d.Name))
	}
	return prof
}
