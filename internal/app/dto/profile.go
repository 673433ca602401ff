package dto

import (
	"fmt"
	"time"

	"venuebook/internal/domain/profile"
)

type ProfileCard struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	Avatar       Media  `json:"avatar"`
	Banner       Media  `json:"banner"`
	VenueManager bool   `json:"venue_manager"`
}

type CustomerDashboard struct {
	Profile  ProfileCard   `json:"profile"`
	Upcoming []BookingView `json:"upcoming"`
	History  []BookingView `json:"history"`
}

// ManagerOverview renders AvgRating as a fixed one-decimal string so an
// empty portfolio reads "0.0" rather than "0".
type ManagerOverview struct {
	Profile       ProfileCard    `json:"profile"`
	Venues        []VenueSummary `json:"venues"`
	TotalVenues   int            `json:"total_venues"`
	TotalBookings int            `json:"total_bookings"`
	AvgRating     string         `json:"avg_rating"`
	Revenue       float64        `json:"revenue"`
}

func MapProfileCard(p *profile.Profile) ProfileCard {
	if p == nil {
		return ProfileCard{}
	}
	return ProfileCard{
		Name:         p.Name,
		Email:        p.Email,
		Bio:          p.Bio,
		Avatar:       Media{URL: p.Avatar.URL, Alt: p.Avatar.Alt},
		Banner:       Media{URL: p.Banner.URL, Alt: p.Banner.Alt},
		VenueManager: p.VenueManager,
	}
}

func MapCustomerDashboard(p *profile.Profile, parts profile.Partitioned, now time.Time) CustomerDashboard {
	dash := CustomerDashboard{
		Profile:  MapProfileCard(p),
		Upcoming: make([]BookingView, 0, len(parts.Upcoming)),
		History:  make([]BookingView, 0, len(parts.History)),
	}
	for _, entry := range parts.Upcoming {
		dash.Upcoming = append(dash.Upcoming, MapBookingView(entry, now))
	}
	for _, entry := range parts.History {
		dash.History = append(dash.History, MapBookingView(entry, now))
	}
	return dash
}

func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

func MapManagerOverview(p *profile.Profile, venues []VenueSummary, stats profile.ManagerStats) ManagerOverview {
	return ManagerOverview{
		Profile:       MapProfileCard(p),
		Venues:        venues,
		TotalVenues:   stats.TotalVenues,
		TotalBookings: stats.TotalBookings,
		AvgRating:     FormatRating(stats.AvgRating),
		Revenue:       stats.Revenue,
	}
}
