package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: date-to must be after date-from")
)

const day = 24 * time.Hour

// DateRange represents a half-open interval [From, To): the last night ends
// on To, so a checkout and the next check-in may share a calendar day.
type DateRange struct {
	From time.Time
	To   time.Time
}

func New(from, to time.Time) (DateRange, error) {
	dr := DateRange{From: from.UTC(), To: to.UTC()}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.From.IsZero() || dr.To.IsZero() {
		return ErrInvalidRange
	}
	if !dr.To.After(dr.From) {
		return ErrInvalidRange
	}
	return nil
}

// Nights counts billable nights, rounding partial days up. A non-positive
// span yields zero; callers that require at least one night must check.
func (dr DateRange) Nights() int {
	span := dr.To.Sub(dr.From)
	if span <= 0 {
		return 0
	}
	nights := int(span / day)
	if span%day != 0 {
		nights++
	}
	return nights
}

// Overlaps reports half-open overlap: ranges sharing only a boundary
// instant do not overlap.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.From.Before(other.To) && other.From.Before(dr.To)
}

func (dr DateRange) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return (t.Equal(dr.From) || t.After(dr.From)) && t.Before(dr.To)
}

func (dr DateRange) IsZero() bool {
	return dr.From.IsZero() && dr.To.IsZero()
}

// TotalPrice is nights times the nightly rate; any rounding already
// happened in the nights computation.
func TotalPrice(nights int, pricePerNight float64) float64 {
	return float64(nights) * pricePerNight
}
