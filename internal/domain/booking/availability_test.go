package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/domain/shared/daterange"
	"venuebook/internal/domain/venue"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, from, to time.Time) daterange.DateRange {
	t.Helper()
	dr, err := daterange.New(from, to)
	require.NoError(t, err)
	return dr
}

func TestIsAvailable_EmptyCalendar(t *testing.T) {
	candidate := mustRange(t, day(2025, 6, 1), day(2025, 6, 5))
	assert.True(t, IsAvailable(candidate, nil))

	inverted := daterange.DateRange{From: day(2025, 6, 5), To: day(2025, 6, 1)}
	assert.False(t, IsAvailable(inverted, nil))
}

func TestIsAvailable_BackToBackCheckout(t *testing.T) {
	existing := []venue.BookedStay{
		{ID: "b1", Range: mustRange(t, day(2025, 6, 1), day(2025, 6, 5))},
	}

	// checkout day doubles as the next check-in day
	candidate := mustRange(t, day(2025, 6, 5), day(2025, 6, 8))
	assert.True(t, IsAvailable(candidate, existing))

	quote := QuoteStay(candidate, 1000)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 3000.0, quote.Total)
}

func TestIsAvailable_OverlapRejected(t *testing.T) {
	existing := []venue.BookedStay{
		{ID: "b1", Range: mustRange(t, day(2025, 6, 1), day(2025, 6, 5))},
	}

	candidate := mustRange(t, day(2025, 6, 3), day(2025, 6, 6))
	assert.False(t, IsAvailable(candidate, existing))

	conflict, found := FirstConflict(candidate, existing)
	require.True(t, found)
	assert.Equal(t, "b1", conflict.ID)
}

func TestValidateGuests(t *testing.T) {
	v := &venue.Venue{ID: "v1", MaxGuests: 4}

	assert.NoError(t, ValidateGuests(1, v))
	assert.NoError(t, ValidateGuests(4, v))
	assert.ErrorIs(t, ValidateGuests(0, v), ErrInvalidGuestCount)
	assert.ErrorIs(t, ValidateGuests(5, v), ErrInvalidGuestCount)
	assert.ErrorIs(t, ValidateGuests(2, nil), ErrInvalidGuestCount)
}
