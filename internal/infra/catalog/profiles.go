package catalog

import (
	"context"
	"net/http"
	"net/url"

	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
	domainvenue "venuebook/internal/domain/venue"
)

// ByName fetches a profile with its bookings and venues embedded. The
// service rejects reads of other profiles, so name is normally the
// session's own.
func (c *Client) ByName(ctx context.Context, sess session.Session, name string) (*domainprofile.Profile, error) {
	query := url.Values{}
	query.Set("_bookings", "true")
	query.Set("_venues", "true")

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint("/profiles/"+url.PathEscape(name), query), &sess, nil)
	if err != nil {
		return nil, err
	}
	var envelope itemEnvelope[profileDoc]
	if err := c.do(req, &envelope, domainprofile.ErrProfileNotFound); err != nil {
		return nil, err
	}
	return envelope.Data.toDomain(), nil
}

// VenuesByName lists the venues a manager profile owns, calendars included
// so portfolio stats can count reservations.
func (c *Client) VenuesByName(ctx context.Context, sess session.Session, name string) ([]*domainvenue.Venue, error) {
	query := url.Values{}
	query.Set("_bookings", "true")

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint("/profiles/"+url.PathEscape(name)+"/venues", query), &sess, nil)
	if err != nil {
		return nil, err
	}
	var envelope listEnvelope[venueDoc]
	if err := c.do(req, &envelope, domainprofile.ErrProfileNotFound); err != nil {
		return nil, err
	}
	venues := make([]*domainvenue.Venue, 0, len(envelope.Data))
	for _, doc := range envelope.Data {
		venues = append(venues, doc.toDomain())
	}
	return venues, nil
}

var _ domainprofile.Gateway = (*Client)(nil)
