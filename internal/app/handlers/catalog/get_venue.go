package catalog

import (
	"context"

	"venuebook/internal/app/dto"
	"venuebook/internal/app/queries"
	domainvenue "venuebook/internal/domain/venue"
)

const getVenueKey = "catalog.venue"

type GetVenueQuery struct {
	VenueID string
}

func (q GetVenueQuery) Key() string { return getVenueKey }

// GetVenueHandler loads one venue with its embedded reservation calendar,
// the data availability checks run against.
type GetVenueHandler struct {
	Catalog domainvenue.Catalog
}

func (h *GetVenueHandler) Handle(ctx context.Context, q GetVenueQuery) (dto.VenueDetail, error) {
	v, err := h.Catalog.VenueByID(ctx, domainvenue.VenueID(q.VenueID))
	if err != nil {
		return dto.VenueDetail{}, err
	}
	return dto.MapVenueDetail(v), nil
}

var _ queries.Handler[GetVenueQuery, dto.VenueDetail] = (*GetVenueHandler)(nil)
