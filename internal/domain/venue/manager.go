package venue

import (
	"context"

	"venuebook/internal/domain/session"
)

// Manager is the write side of venue administration. Only the owning
// venue-manager profile may call it; the caller enforces that boundary
// before the request leaves the process.
type Manager interface {
	DeleteVenue(ctx context.Context, sess session.Session, id VenueID) error
}
