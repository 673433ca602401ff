package dashboard

import (
	"context"

	"venuebook/internal/app/dto"
	"venuebook/internal/app/queries"
	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
)

const managerOverviewKey = "dashboard.manager"

type ManagerOverviewQuery struct {
	Session session.Session
}

func (q ManagerOverviewQuery) Key() string { return managerOverviewKey }

func (q ManagerOverviewQuery) InFlightScope() string { return q.Session.Name }

type ManagerOverviewHandler struct {
	Profiles domainprofile.Gateway
}

func (h *ManagerOverviewHandler) Handle(ctx context.Context, q ManagerOverviewQuery) (dto.ManagerOverview, error) {
	if err := q.Session.RequireManager(); err != nil {
		return dto.ManagerOverview{}, err
	}

	prof, err := h.Profiles.ByName(ctx, q.Session, q.Session.Name)
	if err != nil {
		return dto.ManagerOverview{}, err
	}
	venues, err := h.Profiles.VenuesByName(ctx, q.Session, q.Session.Name)
	if err != nil {
		return dto.ManagerOverview{}, err
	}

	stats := domainprofile.ComputeManagerStats(venues)
	summaries := make([]dto.VenueSummary, 0, len(venues))
	for _, v := range venues {
		summaries = append(summaries, dto.MapVenueSummary(v))
	}
	return dto.MapManagerOverview(prof, summaries, stats), nil
}

var _ queries.Handler[ManagerOverviewQuery, dto.ManagerOverview] = (*ManagerOverviewHandler)(nil)
