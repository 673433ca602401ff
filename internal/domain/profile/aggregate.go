package profile

import (
	"sort"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/venue"
)

// Partitioned splits a profile's bookings for the dashboard: upcoming
// stays sorted soonest-first, everything else newest-first.
type Partitioned struct {
	Upcoming []BookingEntry
	History  []BookingEntry
}

// Partition classifies by check-in against now. Ongoing stays are not
// upcoming, so they land in History; IsOngoing stays available as an
// independent predicate so either list can flag them.
func Partition(entries []BookingEntry, now time.Time) Partitioned {
	now = now.UTC()
	var out Partitioned
	for _, entry := range entries {
		if entry.Booking == nil {
			continue
		}
		if entry.Booking.Range.From.After(now) {
			out.Upcoming = append(out.Upcoming, entry)
		} else {
			out.History = append(out.History, entry)
		}
	}
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].Booking.Range.From.Before(out.Upcoming[j].Booking.Range.From)
	})
	sort.SliceStable(out.History, func(i, j int) bool {
		return out.History[i].Booking.Range.From.After(out.History[j].Booking.Range.From)
	})
	return out
}

// IsOngoing reports whether the stay has started but not yet ended.
func IsOngoing(b *booking.Booking, now time.Time) bool {
	if b == nil {
		return false
	}
	now = now.UTC()
	return !b.Range.From.After(now) && now.Before(b.Range.To)
}

// ManagerStats summarizes a manager's portfolio. Revenue is booking
// count times the nightly price, not a per-night sum; the dashboard
// metric is defined that way.
type ManagerStats struct {
	TotalVenues   int
	TotalBookings int
	AvgRating     float64
	Revenue       float64
}

func ComputeManagerStats(venues []*venue.Venue) ManagerStats {
	stats := ManagerStats{TotalVenues: len(venues)}
	if len(venues) == 0 {
		return stats
	}
	var ratingSum float64
	for _, v := range venues {
		if v == nil {
			stats.TotalVenues--
			continue
		}
		stats.TotalBookings += len(v.Bookings)
		stats.Revenue += float64(len(v.Bookings)) * v.Price
		ratingSum += v.Rating
	}
	if stats.TotalVenues > 0 {
		stats.AvgRating = ratingSum / float64(stats.TotalVenues)
	}
	return stats
}
