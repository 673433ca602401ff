package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/domain/shared/daterange"
)

func draft(t *testing.T) *Booking {
	t.Helper()
	b, err := NewDraft(DraftParams{
		VenueID:  "v1",
		Customer: "astrid",
		Range:    mustRange(t, day(2030, 6, 1), day(2030, 6, 5)),
		Guests:   2,
		Now:      day(2025, 1, 1),
	})
	require.NoError(t, err)
	return b
}

func TestNewDraft_Guards(t *testing.T) {
	now := day(2025, 1, 1)

	_, err := NewDraft(DraftParams{
		VenueID:  "v1",
		Customer: "astrid",
		Range:    daterange.DateRange{From: day(2030, 6, 1), To: day(2030, 6, 1)},
		Guests:   2,
		Now:      now,
	})
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)

	_, err = NewDraft(DraftParams{
		VenueID:  "v1",
		Customer: "astrid",
		Range:    mustRange(t, day(2030, 6, 1), day(2030, 6, 5)),
		Guests:   0,
		Now:      now,
	})
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestLifecycle_HappyPath(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)

	require.NoError(t, b.Submit(now))
	assert.Equal(t, StatePending, b.State)

	require.NoError(t, b.Confirm("remote-42", 4000, now))
	assert.Equal(t, StateConfirmed, b.State)
	assert.Equal(t, BookingID("remote-42"), b.ID)

	events := b.PendingEvents()
	require.Len(t, events, 1)
	confirmed, ok := events[0].(BookingConfirmed)
	require.True(t, ok)
	assert.Equal(t, 4000.0, confirmed.Total)
}

func TestLifecycle_RejectionReturnsToDraft(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)

	require.NoError(t, b.Submit(now))
	require.NoError(t, b.Reject("venue is fully booked", now))
	assert.Equal(t, StateFailed, b.State)
	assert.Equal(t, "venue is fully booked", b.FailureReason)

	require.NoError(t, b.Reopen(now))
	assert.Equal(t, StateDraft, b.State)
	assert.Empty(t, b.FailureReason)
}

func TestLifecycle_InvalidTransitions(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)

	assert.ErrorIs(t, b.Confirm("x", 0, now), ErrInvalidState)
	assert.ErrorIs(t, b.BeginCancel(now), ErrInvalidState)

	require.NoError(t, b.Submit(now))
	assert.ErrorIs(t, b.Submit(now), ErrInvalidState)
}

func TestLifecycle_Cancel(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)
	require.NoError(t, b.Submit(now))
	require.NoError(t, b.Confirm("remote-42", 4000, now))
	b.ClearEvents()

	require.NoError(t, b.BeginCancel(now))
	assert.Equal(t, StateCancelling, b.State)

	require.NoError(t, b.CompleteCancel(now))
	assert.Equal(t, StateCancelled, b.State)

	events := b.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.cancelled", events[0].EventName())

	// cancellation is irreversible
	assert.ErrorIs(t, b.BeginCancel(now), ErrInvalidState)
}

func TestEditable_FutureOnly(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)
	require.NoError(t, b.Submit(now))
	require.NoError(t, b.Confirm("remote-42", 4000, now))

	assert.True(t, b.Editable(day(2030, 5, 31)))
	assert.False(t, b.Editable(day(2030, 6, 1)), "ongoing bookings are read-only")
	assert.False(t, b.Editable(day(2030, 7, 1)), "completed bookings are read-only")
}

func TestChangeGuests(t *testing.T) {
	b := draft(t)
	now := day(2025, 1, 2)
	require.NoError(t, b.Submit(now))
	require.NoError(t, b.Confirm("remote-42", 4000, now))
	b.ClearEvents()

	assert.ErrorIs(t, b.ChangeGuests(0, 4, now), ErrInvalidGuestCount)
	assert.ErrorIs(t, b.ChangeGuests(5, 4, now), ErrInvalidGuestCount)

	require.NoError(t, b.ChangeGuests(3, 4, now))
	assert.Equal(t, 3, b.Guests)
	require.Len(t, b.PendingEvents(), 1)

	// past check-in blocks mutation regardless of bounds
	assert.ErrorIs(t, b.ChangeGuests(2, 4, day(2030, 6, 2)), ErrNotEditable)
}
