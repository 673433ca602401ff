package booking

import (
	"venuebook/internal/domain/shared/daterange"
	"venuebook/internal/domain/venue"
)

// IsAvailable reports whether the candidate range can be booked against
// the venue's currently known reservations: the range must be valid and
// overlap none of them. Half-open intervals make back-to-back checkout
// and check-in on the same day legal.
func IsAvailable(candidate daterange.DateRange, existing []venue.BookedStay) bool {
	if candidate.Validate() != nil {
		return false
	}
	for _, stay := range existing {
		if candidate.Overlaps(stay.Range) {
			return false
		}
	}
	return true
}

// FirstConflict returns the reservation blocking the candidate, if any.
func FirstConflict(candidate daterange.DateRange, existing []venue.BookedStay) (venue.BookedStay, bool) {
	for _, stay := range existing {
		if candidate.Overlaps(stay.Range) {
			return stay, true
		}
	}
	return venue.BookedStay{}, false
}

// ValidateGuests checks the party size against the venue's capacity.
func ValidateGuests(guests int, v *venue.Venue) error {
	if v == nil || !v.CanHost(guests) {
		return ErrInvalidGuestCount
	}
	return nil
}

// Quote is the computed nights and total for a candidate stay, produced
// before commitment.
type Quote struct {
	Nights int
	Total  float64
}

// QuoteStay prices an available candidate range. Callers must have
// established availability first; the formula itself never rejects.
func QuoteStay(candidate daterange.DateRange, pricePerNight float64) Quote {
	nights := candidate.Nights()
	return Quote{
		Nights: nights,
		Total:  daterange.TotalPrice(nights, pricePerNight),
	}
}
