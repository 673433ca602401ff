package dto

import (
	"time"

	"venuebook/internal/domain/venue"
)

type AmenityFlags struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type VenueSummary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"max_guests"`
	Rating      float64      `json:"rating"`
	Amenities   AmenityFlags `json:"amenities"`
	Location    Location     `json:"location"`
	Media       []Media      `json:"media"`
	Owner       string       `json:"owner,omitempty"`
	Created     time.Time    `json:"created"`
	Updated     time.Time    `json:"updated"`
}

// PageMeta is absent (null) for search-mode results: the search endpoint
// reports no pagination, and clients must not fabricate further pages.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	PageCount  int `json:"page_count"`
	TotalCount int `json:"total_count"`
}

type VenuePage struct {
	Items []VenueSummary `json:"items"`
	Meta  *PageMeta      `json:"meta"`
}

type BookedStay struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
	Guests   int       `json:"guests"`
}

type VenueDetail struct {
	VenueSummary
	Bookings []BookedStay `json:"bookings"`
}

func MapVenueSummary(v *venue.Venue) VenueSummary {
	if v == nil {
		return VenueSummary{}
	}
	media := make([]Media, 0, len(v.Media))
	for _, m := range v.Media {
		media = append(media, Media{URL: m.URL, Alt: m.Alt})
	}
	return VenueSummary{
		ID:          string(v.ID),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Amenities: AmenityFlags{
			Wifi:      v.Amenities.Wifi,
			Parking:   v.Amenities.Parking,
			Breakfast: v.Amenities.Breakfast,
			Pets:      v.Amenities.Pets,
		},
		Location: Location{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
		},
		Media:   media,
		Owner:   v.Owner,
		Created: v.CreatedAt,
		Updated: v.UpdatedAt,
	}
}

func MapVenuePage(p venue.Page) VenuePage {
	items := make([]VenueSummary, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, MapVenueSummary(v))
	}
	out := VenuePage{Items: items}
	if p.Meta != nil {
		out.Meta = &PageMeta{
			Page:       p.Meta.Page,
			PageSize:   p.Meta.PageSize,
			PageCount:  p.Meta.PageCount,
			TotalCount: p.Meta.TotalCount,
		}
	}
	return out
}

func MapVenueDetail(v *venue.Venue) VenueDetail {
	detail := VenueDetail{VenueSummary: MapVenueSummary(v)}
	if v == nil {
		return detail
	}
	detail.Bookings = make([]BookedStay, 0, len(v.Bookings))
	for _, stay := range v.Bookings {
		detail.Bookings = append(detail.Bookings, BookedStay{
			ID:       stay.ID,
			DateFrom: stay.Range.From,
			DateTo:   stay.Range.To,
			Guests:   stay.Guests,
		})
	}
	return detail
}
