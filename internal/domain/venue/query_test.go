package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryState_Defaults(t *testing.T) {
	s := NewQueryState()

	assert.Equal(t, ModeBrowse, s.Mode())
	assert.Equal(t, SortByCreated, s.Sort)
	assert.Equal(t, OrderDesc, s.Order)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, DefaultPageSize, s.PageSize)
	assert.Equal(t, 1, s.Guests)
	assert.False(t, s.Amenities.Any())
}

func TestQueryState_MutationsResetPage(t *testing.T) {
	s := NewQueryState().WithPage(5)
	require.Equal(t, 5, s.Page)

	assert.Equal(t, 1, s.WithSort(SortByPrice, OrderAsc).Page)
	assert.Equal(t, 1, s.WithQuery("cabin").Page)
	assert.Equal(t, 1, s.WithAmenities(Amenities{Wifi: true}).Page)
	assert.Equal(t, 1, s.WithGuests(3).Page)

	// WithPage itself leaves everything else alone
	moved := NewQueryState().WithSort(SortByRating, OrderAsc).WithPage(7)
	assert.Equal(t, SortByRating, moved.Sort)
	assert.Equal(t, OrderAsc, moved.Order)
	assert.Equal(t, 7, moved.Page)
}

func TestQueryState_RequestParams_BrowseMode(t *testing.T) {
	params := NewQueryState().WithSort(SortByPrice, OrderAsc).WithPage(3).RequestParams()

	require.Equal(t, ModeBrowse, params.Mode)
	values := params.Values()
	assert.Empty(t, values.Get("q"))
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "12", values.Get("pageSize"))
	assert.Equal(t, "price", values.Get("sort"))
	assert.Equal(t, "asc", values.Get("order"))
}

func TestQueryState_RequestParams_SearchMode(t *testing.T) {
	params := NewQueryState().
		WithSort(SortByPrice, OrderAsc).
		WithAmenities(Amenities{Wifi: true}).
		WithQuery("beach house").
		RequestParams()

	require.Equal(t, ModeSearch, params.Mode)
	values := params.Values()
	assert.Equal(t, "beach house", values.Get("q"))
	// search mode must not leak browse parameters
	assert.Empty(t, values.Get("page"))
	assert.Empty(t, values.Get("pageSize"))
	assert.Empty(t, values.Get("sort"))
	assert.Empty(t, values.Get("order"))
}

func TestQueryState_Reset(t *testing.T) {
	s := NewQueryState().WithQuery("surf").WithGuests(4).WithPage(9)
	assert.Equal(t, NewQueryState(), s.Reset())
}

func TestQueryState_Normalized(t *testing.T) {
	s := QueryState{Sort: "bogus", Order: "sideways", Page: -2, PageSize: 0, Guests: 0}
	n := s.Normalized()

	assert.Equal(t, SortByCreated, n.Sort)
	assert.Equal(t, OrderDesc, n.Order)
	assert.Equal(t, 1, n.Page)
	assert.Equal(t, DefaultPageSize, n.PageSize)
	assert.Equal(t, 1, n.Guests)
}

func TestQueryState_FilterPage(t *testing.T) {
	venues := []*Venue{
		{ID: "a", MaxGuests: 2, Amenities: Amenities{Wifi: true}},
		{ID: "b", MaxGuests: 6, Amenities: Amenities{Wifi: true, Parking: true}},
		{ID: "c", MaxGuests: 6, Amenities: Amenities{Parking: true}},
	}
	meta := &PageMeta{Page: 1, PageSize: 12, PageCount: 4, TotalCount: 40}

	s := NewQueryState().WithAmenities(Amenities{Wifi: true}).WithGuests(4)
	filtered := s.FilterPage(Page{Items: venues, Meta: meta})

	require.Len(t, filtered.Items, 1)
	assert.Equal(t, VenueID("b"), filtered.Items[0].ID)
	// server meta stays untouched even though the page under-fills
	assert.Equal(t, meta, filtered.Meta)

	// no filters means the page passes through unchanged
	passthrough := NewQueryState().FilterPage(Page{Items: venues, Meta: meta})
	assert.Len(t, passthrough.Items, 3)
}
