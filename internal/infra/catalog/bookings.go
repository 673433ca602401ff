package catalog

import (
	"context"
	"net/http"
	"net/url"

	domainbooking "venuebook/internal/domain/booking"
	"venuebook/internal/domain/session"
)

// Create submits one booking. The returned receipt carries the id the
// service issued; the caller's draft adopts it on confirmation.
func (c *Client) Create(ctx context.Context, sess session.Session, r domainbooking.CreateRequest) (domainbooking.Receipt, error) {
	body := createBookingBody{
		DateFrom: r.Range.From,
		DateTo:   r.Range.To,
		Guests:   r.Guests,
		VenueID:  string(r.VenueID),
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint("/bookings", nil), &sess, body)
	if err != nil {
		return domainbooking.Receipt{}, err
	}
	var envelope itemEnvelope[bookingDoc]
	if err := c.do(req, &envelope, nil); err != nil {
		return domainbooking.Receipt{}, err
	}
	receipt := envelope.Data.toReceipt()
	if receipt.VenueID == "" {
		receipt.VenueID = r.VenueID
	}
	return receipt, nil
}

// UpdateGuests changes the party size on an existing booking.
func (c *Client) UpdateGuests(ctx context.Context, sess session.Session, id domainbooking.BookingID, guests int) (domainbooking.Receipt, error) {
	body := updateBookingBody{Guests: guests}
	req, err := c.newRequest(ctx, http.MethodPut, c.endpoint("/bookings/"+url.PathEscape(string(id)), nil), &sess, body)
	if err != nil {
		return domainbooking.Receipt{}, err
	}
	var envelope itemEnvelope[bookingDoc]
	if err := c.do(req, &envelope, domainbooking.ErrBookingNotFound); err != nil {
		return domainbooking.Receipt{}, err
	}
	return envelope.Data.toReceipt(), nil
}

// Cancel deletes the booking on the service side.
func (c *Client) Cancel(ctx context.Context, sess session.Session, id domainbooking.BookingID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.endpoint("/bookings/"+url.PathEscape(string(id)), nil), &sess, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil, domainbooking.ErrBookingNotFound)
}

var _ domainbooking.Gateway = (*Client)(nil)
