package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainvenue "venuebook/internal/domain/venue"
)

type stubCatalog struct {
	page       domainvenue.Page
	lastParams domainvenue.RequestParams
	venue      *domainvenue.Venue
	err        error
}

func (c *stubCatalog) FetchPage(ctx context.Context, params domainvenue.RequestParams) (domainvenue.Page, error) {
	c.lastParams = params
	if c.err != nil {
		return domainvenue.Page{}, c.err
	}
	return c.page, nil
}

func (c *stubCatalog) VenueByID(ctx context.Context, id domainvenue.VenueID) (*domainvenue.Venue, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.venue == nil || c.venue.ID != id {
		return nil, domainvenue.ErrVenueNotFound
	}
	return c.venue, nil
}

func makeVenue(t *testing.T, id string, maxGuests int, amenities domainvenue.Amenities) *domainvenue.Venue {
	t.Helper()
	v, err := domainvenue.NewVenue(domainvenue.CreateVenueParams{
		ID:        domainvenue.VenueID(id),
		Name:      "Venue " + id,
		Price:     500,
		MaxGuests: maxGuests,
		Rating:    4,
		Amenities: amenities,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return v
}

func TestSearchVenues_BrowseModeSendsPagination(t *testing.T) {
	stub := &stubCatalog{page: domainvenue.Page{
		Meta: &domainvenue.PageMeta{Page: 2, PageSize: 12, PageCount: 5, TotalCount: 60},
	}}
	h := &SearchVenuesHandler{Catalog: stub}

	state := domainvenue.NewQueryState().WithSort(domainvenue.SortByPrice, domainvenue.OrderAsc).WithPage(2)
	res, err := h.Handle(context.Background(), SearchVenuesQuery{State: state})
	require.NoError(t, err)

	assert.Equal(t, domainvenue.ModeBrowse, stub.lastParams.Mode)
	assert.Equal(t, 2, stub.lastParams.Page)
	assert.Equal(t, domainvenue.SortByPrice, stub.lastParams.Sort)
	require.NotNil(t, res.Meta)
	assert.Equal(t, 60, res.Meta.TotalCount)
}

func TestSearchVenues_SearchModeCarriesOnlyQuery(t *testing.T) {
	stub := &stubCatalog{page: domainvenue.Page{}}
	h := &SearchVenuesHandler{Catalog: stub}

	state := domainvenue.NewQueryState().WithPage(3).WithQuery("  beach house ")
	res, err := h.Handle(context.Background(), SearchVenuesQuery{State: state})
	require.NoError(t, err)

	assert.Equal(t, domainvenue.ModeSearch, stub.lastParams.Mode)
	assert.Equal(t, "beach house", stub.lastParams.Query)
	assert.Zero(t, stub.lastParams.Page)
	assert.Nil(t, res.Meta, "search results report no pagination")
}

func TestSearchVenues_FiltersLocallyKeepingMeta(t *testing.T) {
	wifi := makeVenue(t, "a", 2, domainvenue.Amenities{Wifi: true})
	plain := makeVenue(t, "b", 2, domainvenue.Amenities{})
	stub := &stubCatalog{page: domainvenue.Page{
		Items: []*domainvenue.Venue{wifi, plain},
		Meta:  &domainvenue.PageMeta{Page: 1, PageSize: 12, PageCount: 1, TotalCount: 2},
	}}
	h := &SearchVenuesHandler{Catalog: stub}

	state := domainvenue.NewQueryState().WithAmenities(domainvenue.Amenities{Wifi: true})
	res, err := h.Handle(context.Background(), SearchVenuesQuery{State: state})
	require.NoError(t, err)

	// under-filled page is accepted; server meta stays untouched
	require.Len(t, res.Items, 1)
	assert.Equal(t, "a", res.Items[0].ID)
	require.NotNil(t, res.Meta)
	assert.Equal(t, 2, res.Meta.TotalCount)
}

func TestGetVenue_IncludesCalendar(t *testing.T) {
	v := makeVenue(t, "venue-1", 4, domainvenue.Amenities{Wifi: true})
	stub := &stubCatalog{venue: v}
	h := &GetVenueHandler{Catalog: stub}

	res, err := h.Handle(context.Background(), GetVenueQuery{VenueID: "venue-1"})
	require.NoError(t, err)
	assert.Equal(t, "venue-1", res.ID)
	assert.NotNil(t, res.Bookings)
}

func TestGetVenue_NotFound(t *testing.T) {
	h := &GetVenueHandler{Catalog: &stubCatalog{}}

	_, err := h.Handle(context.Background(), GetVenueQuery{VenueID: "ghost"})
	require.ErrorIs(t, err, domainvenue.ErrVenueNotFound)
}
