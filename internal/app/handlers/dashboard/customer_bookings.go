package dashboard

import (
	"context"
	"time"

	"venuebook/internal/app/dto"
	"venuebook/internal/app/queries"
	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
)

const customerBookingsKey = "dashboard.customer"

type CustomerBookingsQuery struct {
	Session session.Session
}

func (q CustomerBookingsQuery) Key() string { return customerBookingsKey }

// InFlightScope dedupes concurrent dashboard fetches per profile.
func (q CustomerBookingsQuery) InFlightScope() string { return q.Session.Name }

// CustomerBookingsHandler builds the traveler dashboard: upcoming stays
// soonest-first, past and ongoing stays newest-first, each flagged with
// whether it is currently in progress and whether it can still be changed.
type CustomerBookingsHandler struct {
	Profiles domainprofile.Gateway
	Clock    func() time.Time
}

func (h *CustomerBookingsHandler) Handle(ctx context.Context, q CustomerBookingsQuery) (dto.CustomerDashboard, error) {
	if err := q.Session.Validate(); err != nil {
		return dto.CustomerDashboard{}, err
	}
	now := h.now()

	prof, err := h.Profiles.ByName(ctx, q.Session, q.Session.Name)
	if err != nil {
		return dto.CustomerDashboard{}, err
	}

	parts := domainprofile.Partition(prof.Bookings, now)
	return dto.MapCustomerDashboard(prof, parts, now), nil
}

func (h *CustomerBookingsHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock().UTC()
	}
	return time.Now().UTC()
}

var _ queries.Handler[CustomerBookingsQuery, dto.CustomerDashboard] = (*CustomerBookingsHandler)(nil)
