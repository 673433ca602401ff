package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "venuebook/internal/domain/booking"
	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
	domainrange "venuebook/internal/domain/shared/daterange"
	domainvenue "venuebook/internal/domain/venue"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type stubProfiles struct {
	profile *domainprofile.Profile
	venues  []*domainvenue.Venue
	err     error
}

func (s *stubProfiles) ByName(ctx context.Context, sess session.Session, name string) (*domainprofile.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfiles) VenuesByName(ctx context.Context, sess session.Session, name string) ([]*domainvenue.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.venues, nil
}

func entry(t *testing.T, id string, from, to time.Time) domainprofile.BookingEntry {
	t.Helper()
	dr, err := domainrange.New(from, to)
	require.NoError(t, err)
	b, err := domainbooking.NewDraft(domainbooking.DraftParams{
		VenueID:  "venue-1",
		Customer: "alice",
		Range:    dr,
		Guests:   2,
		Now:      testNow.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, b.Submit(testNow.Add(-24*time.Hour)))
	require.NoError(t, b.Confirm(domainbooking.BookingID(id), 1000, testNow.Add(-24*time.Hour)))
	b.ClearEvents()
	return domainprofile.BookingEntry{Booking: b}
}

func makeVenue(t *testing.T, price float64, rating float64, bookings int) *domainvenue.Venue {
	t.Helper()
	stays := make([]domainvenue.BookedStay, 0, bookings)
	for i := 0; i < bookings; i++ {
		from := time.Date(2024, 1, 1+2*i, 0, 0, 0, 0, time.UTC)
		dr, err := domainrange.New(from, from.AddDate(0, 0, 2))
		require.NoError(t, err)
		stays = append(stays, domainvenue.BookedStay{ID: "s", Range: dr, Guests: 1})
	}
	v, err := domainvenue.NewVenue(domainvenue.CreateVenueParams{
		ID:        "venue-x",
		Name:      "Venue",
		Price:     price,
		MaxGuests: 4,
		Rating:    rating,
		Bookings:  stays,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	})
	require.NoError(t, err)
	return v
}

func customerSession() session.Session {
	return session.New("alice", "alice@example.com", "token-123", false)
}

func managerSession() session.Session {
	return session.New("bob", "bob@example.com", "token-456", true)
}

func TestCustomerBookings_PartitionsAndFlags(t *testing.T) {
	future := entry(t, "future", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC))
	ongoing := entry(t, "ongoing", time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))
	past := entry(t, "past", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC))

	prof, err := domainprofile.New("alice", "alice@example.com", false)
	require.NoError(t, err)
	prof.Bookings = []domainprofile.BookingEntry{past, future, ongoing}

	h := &CustomerBookingsHandler{Profiles: &stubProfiles{profile: prof}, Clock: fixedClock}
	dash, err := h.Handle(context.Background(), CustomerBookingsQuery{Session: customerSession()})
	require.NoError(t, err)

	require.Len(t, dash.Upcoming, 1)
	assert.Equal(t, "future", dash.Upcoming[0].ID)
	assert.True(t, dash.Upcoming[0].Editable)
	assert.False(t, dash.Upcoming[0].IsOngoing)

	// ongoing stays list under history, newest first, flagged as in progress
	require.Len(t, dash.History, 2)
	assert.Equal(t, "ongoing", dash.History[0].ID)
	assert.True(t, dash.History[0].IsOngoing)
	assert.False(t, dash.History[0].Editable)
	assert.Equal(t, "past", dash.History[1].ID)
	assert.False(t, dash.History[1].IsOngoing)
}

func TestCustomerBookings_RequiresSession(t *testing.T) {
	h := &CustomerBookingsHandler{Profiles: &stubProfiles{}, Clock: fixedClock}
	_, err := h.Handle(context.Background(), CustomerBookingsQuery{})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestManagerOverview_Stats(t *testing.T) {
	prof, err := domainprofile.New("bob", "bob@example.com", true)
	require.NoError(t, err)
	venues := []*domainvenue.Venue{
		makeVenue(t, 1000, 5, 2),
		makeVenue(t, 250, 4, 1),
	}
	h := &ManagerOverviewHandler{Profiles: &stubProfiles{profile: prof, venues: venues}}

	res, err := h.Handle(context.Background(), ManagerOverviewQuery{Session: managerSession()})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalVenues)
	assert.Equal(t, 3, res.TotalBookings)
	assert.Equal(t, 2250.0, res.Revenue)
	assert.Equal(t, "4.5", res.AvgRating)
	assert.Len(t, res.Venues, 2)
}

func TestManagerOverview_EmptyPortfolioFormatsZero(t *testing.T) {
	prof, err := domainprofile.New("bob", "bob@example.com", true)
	require.NoError(t, err)
	h := &ManagerOverviewHandler{Profiles: &stubProfiles{profile: prof}}

	res, err := h.Handle(context.Background(), ManagerOverviewQuery{Session: managerSession()})
	require.NoError(t, err)
	assert.Equal(t, "0.0", res.AvgRating)
	assert.Zero(t, res.Revenue)
}

func TestManagerOverview_RejectsNonManager(t *testing.T) {
	h := &ManagerOverviewHandler{Profiles: &stubProfiles{}}
	_, err := h.Handle(context.Background(), ManagerOverviewQuery{Session: customerSession()})
	require.ErrorIs(t, err, session.ErrManagerRequired)
}
