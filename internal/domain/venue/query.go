package venue

import (
	"net/url"
	"strconv"
	"strings"

	"venuebook/internal/domain/shared/daterange"
)

// SortField is a supported catalog ordering.
type SortField string

const (
	SortByCreated  SortField = "created"
	SortByPrice    SortField = "price"
	SortByRating   SortField = "rating"
	SortByBookings SortField = "bookings"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 12
	maxPageSize     = 100
)

// QueryMode tags the two mutually exclusive retrieval modes. The backing
// free-text search endpoint accepts no sort, paging or amenity parameters,
// so search and browse never compose.
type QueryMode string

const (
	ModeBrowse QueryMode = "browse"
	ModeSearch QueryMode = "search"
)

// QueryState is the single source of truth for what the traveler is
// currently asking for. It lives for one search session and is never
// persisted. Mutations go through the With* methods, which copy the state
// and restart pagination; direct field writes bypass that discipline.
type QueryState struct {
	Query     string
	Sort      SortField
	Order     SortOrder
	Page      int
	PageSize  int
	Guests    int
	Amenities Amenities
	Stay      daterange.DateRange
}

// NewQueryState returns the session defaults: newest first, first page,
// one guest, no filters.
func NewQueryState() QueryState {
	return QueryState{
		Sort:     SortByCreated,
		Order:    OrderDesc,
		Page:     1,
		PageSize: DefaultPageSize,
		Guests:   1,
	}
}

func (s QueryState) Mode() QueryMode {
	if strings.TrimSpace(s.Query) != "" {
		return ModeSearch
	}
	return ModeBrowse
}

// WithQuery sets the free-text query and restarts pagination.
func (s QueryState) WithQuery(q string) QueryState {
	s.Query = strings.TrimSpace(q)
	s.Page = 1
	return s
}

// WithSort changes ordering and restarts pagination.
func (s QueryState) WithSort(field SortField, order SortOrder) QueryState {
	s.Sort = field
	s.Order = order
	s.Page = 1
	return s
}

// WithPage moves to the requested page leaving every filter untouched.
func (s QueryState) WithPage(page int) QueryState {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// WithAmenities replaces the amenity filter set and restarts pagination.
func (s QueryState) WithAmenities(set Amenities) QueryState {
	s.Amenities = set
	s.Page = 1
	return s
}

// WithGuests sets the party size and restarts pagination.
func (s QueryState) WithGuests(guests int) QueryState {
	if guests < 1 {
		guests = 1
	}
	s.Guests = guests
	s.Page = 1
	return s
}

// WithStay sets the desired date range and restarts pagination.
func (s QueryState) WithStay(stay daterange.DateRange) QueryState {
	s.Stay = stay
	s.Page = 1
	return s
}

// Reset returns the defaults, used by "clear search".
func (s QueryState) Reset() QueryState {
	return NewQueryState()
}

// Normalized returns a sanitized copy with out-of-range values clamped.
func (s QueryState) Normalized() QueryState {
	normalized := s
	normalized.Query = strings.TrimSpace(normalized.Query)
	if normalized.Page < 1 {
		normalized.Page = 1
	}
	if normalized.PageSize <= 0 {
		normalized.PageSize = DefaultPageSize
	}
	if normalized.PageSize > maxPageSize {
		normalized.PageSize = maxPageSize
	}
	if normalized.Guests < 1 {
		normalized.Guests = 1
	}
	switch normalized.Sort {
	case SortByCreated, SortByPrice, SortByRating, SortByBookings:
	default:
		normalized.Sort = SortByCreated
	}
	switch normalized.Order {
	case OrderAsc, OrderDesc:
	default:
		normalized.Order = OrderDesc
	}
	return normalized
}

// RequestParams is the canonical parameter set for one catalog retrieval,
// tagged by mode so consumers can match exhaustively instead of probing
// for an empty query string.
type RequestParams struct {
	Mode     QueryMode
	Query    string
	Page     int
	PageSize int
	Sort     SortField
	Order    SortOrder
}

// RequestParams produces the wire parameters for the current state. Search
// mode carries only the query: the remote search endpoint ignores sort,
// paging and amenity parameters, and that asymmetry is deliberate.
func (s QueryState) RequestParams() RequestParams {
	normalized := s.Normalized()
	switch normalized.Mode() {
	case ModeSearch:
		return RequestParams{Mode: ModeSearch, Query: normalized.Query}
	default:
		return RequestParams{
			Mode:     ModeBrowse,
			Page:     normalized.Page,
			PageSize: normalized.PageSize,
			Sort:     normalized.Sort,
			Order:    normalized.Order,
		}
	}
}

// Values renders the parameters as a query string for the remote service.
func (p RequestParams) Values() url.Values {
	values := url.Values{}
	switch p.Mode {
	case ModeSearch:
		values.Set("q", p.Query)
	default:
		values.Set("page", strconv.Itoa(p.Page))
		values.Set("pageSize", strconv.Itoa(p.PageSize))
		values.Set("sort", string(p.Sort))
		values.Set("order", string(p.Order))
	}
	return values
}

// MatchesFilters applies the client-side part of the query: amenity flags
// and guest capacity. The catalog service accepts neither as parameters,
// so a filtered page may hold fewer than PageSize items even when later
// server pages contain matches; that under-fill is an accepted limitation,
// not something to patch over with refetches.
func (s QueryState) MatchesFilters(v *Venue) bool {
	if v == nil {
		return false
	}
	if !v.Amenities.Covers(s.Amenities) {
		return false
	}
	if s.Guests > 1 && !v.CanHost(s.Guests) {
		return false
	}
	return true
}

// FilterPage keeps the items matching the client-side filters, preserving
// the server-reported meta untouched.
func (s QueryState) FilterPage(page Page) Page {
	if !s.Amenities.Any() && s.Guests <= 1 {
		return page
	}
	items := make([]*Venue, 0, len(page.Items))
	for _, v := range page.Items {
		if s.MatchesFilters(v) {
			items = append(items, v)
		}
	}
	return Page{Items: items, Meta: page.Meta}
}
