package bookingflow

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/outbox"
	"venuebook/internal/domain/session"
	domainvenue "venuebook/internal/domain/venue"
)

const deleteVenueKey = "venue.delete"

var ErrNotVenueOwner = errors.New("venue: profile does not own this venue")

type DeleteVenueCommand struct {
	Session session.Session
	VenueID string
}

func (c DeleteVenueCommand) Key() string { return deleteVenueKey }

func (c DeleteVenueCommand) InFlightScope() string { return c.Session.Name + "/" + c.VenueID }

type DeleteVenueResult struct {
	VenueID string `json:"venue_id"`
}

// DeleteVenueHandler removes a venue from the remote catalog. Ownership is
// checked locally against the fetched venue before the delete goes out, so
// a mismatched profile never reaches the service.
type DeleteVenueHandler struct {
	Catalog domainvenue.Catalog
	Manager domainvenue.Manager
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Clock   func() time.Time
}

func (h *DeleteVenueHandler) Handle(ctx context.Context, cmd DeleteVenueCommand) (*DeleteVenueResult, error) {
	if err := cmd.Session.RequireManager(); err != nil {
		return nil, err
	}

	v, err := h.Catalog.VenueByID(ctx, domainvenue.VenueID(cmd.VenueID))
	if err != nil {
		return nil, err
	}
	if !v.OwnedBy(cmd.Session.Name) {
		return nil, ErrNotVenueOwner
	}

	if err := h.Manager.DeleteVenue(ctx, cmd.Session, v.ID); err != nil {
		return nil, err
	}

	v.Record(domainvenue.VenueDeleted{VenueID: v.ID, Owner: v.Owner, At: h.now()})
	evs := v.PendingEvents()
	v.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), evs); err != nil {
		return nil, err
	}

	return &DeleteVenueResult{VenueID: string(v.ID)}, nil
}

func (h *DeleteVenueHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock().UTC()
	}
	return time.Now().UTC()
}

func (h *DeleteVenueHandler) encoder() outbox.EventEncoder {
	if h.Encoder != nil {
		return h.Encoder
	}
	return outbox.JSONEventEncoder{}
}

var _ commands.Handler[DeleteVenueCommand, *DeleteVenueResult] = (*DeleteVenueHandler)(nil)
