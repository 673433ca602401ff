package catalog

import (
	"context"

	"venuebook/internal/app/dto"
	"venuebook/internal/app/queries"
	domainvenue "venuebook/internal/domain/venue"
)

const searchVenuesKey = "catalog.search"

// SearchVenuesQuery carries the full query state for one catalog fetch.
// Mode selection, parameter shaping and client-side filtering all derive
// from the state; the handler adds nothing of its own.
type SearchVenuesQuery struct {
	State domainvenue.QueryState
}

func (q SearchVenuesQuery) Key() string { return searchVenuesKey }

type SearchVenuesHandler struct {
	Catalog domainvenue.Catalog
}

func (h *SearchVenuesHandler) Handle(ctx context.Context, q SearchVenuesQuery) (dto.VenuePage, error) {
	state := q.State.Normalized()
	page, err := h.Catalog.FetchPage(ctx, state.RequestParams())
	if err != nil {
		return dto.VenuePage{}, err
	}
	// Amenity and guest filters run locally; the page may come back short
	// of PageSize and that is accepted.
	return dto.MapVenuePage(state.FilterPage(page)), nil
}

var _ queries.Handler[SearchVenuesQuery, dto.VenuePage] = (*SearchVenuesHandler)(nil)
