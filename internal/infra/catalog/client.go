package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"venuebook/internal/domain/session"
	domainvenue "venuebook/internal/domain/venue"
)

// Client talks to the remote venue service. Every call is a single
// attempt: no retries, no backoff. A failed fetch surfaces as
// ErrFetchFailed and the caller decides what to do next.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func New(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    httpClient,
		Logger:  logger,
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, sess *session.Session, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}
	return req, nil
}

// do runs the request and decodes a 2xx body into out. Non-2xx responses
// become the not-found sentinel or a RemoteError via rejection.
func (c *Client) do(req *http.Request, out any, notFound error) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logError("request failed", req, err)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := rejection(resp, notFound)
		c.logError("request rejected", req, err)
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logError("decode failed", req, err)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}

func (c *Client) logError(msg string, req *http.Request, err error) {
	if c.Logger != nil {
		c.Logger.Error(msg, "method", req.Method, "url", req.URL.String(), "error", err)
	}
}

// FetchPage retrieves one page of venues. Browse mode hits the paginated
// listing endpoint; search mode hits the free-text endpoint, which returns
// no pagination meta.
func (c *Client) FetchPage(ctx context.Context, params domainvenue.RequestParams) (domainvenue.Page, error) {
	path := "/venues"
	if params.Mode == domainvenue.ModeSearch {
		path = "/venues/search"
	}
	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint(path, params.Values()), nil, nil)
	if err != nil {
		return domainvenue.Page{}, err
	}
	var envelope listEnvelope[venueDoc]
	if err := c.do(req, &envelope, nil); err != nil {
		return domainvenue.Page{}, err
	}

	items := make([]*domainvenue.Venue, 0, len(envelope.Data))
	for _, doc := range envelope.Data {
		items = append(items, doc.toDomain())
	}
	page := domainvenue.Page{Items: items}
	if params.Mode == domainvenue.ModeBrowse {
		page.Meta = envelope.Meta.toDomain()
	}
	return page, nil
}

// VenueByID loads one venue with its reservation calendar and owner.
func (c *Client) VenueByID(ctx context.Context, id domainvenue.VenueID) (*domainvenue.Venue, error) {
	query := url.Values{}
	query.Set("_bookings", "true")
	query.Set("_owner", "true")

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint("/venues/"+url.PathEscape(string(id)), query), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope itemEnvelope[venueDoc]
	if err := c.do(req, &envelope, domainvenue.ErrVenueNotFound); err != nil {
		return nil, err
	}
	return envelope.Data.toDomain(), nil
}

// DeleteVenue removes a venue. The service enforces ownership too, but
// callers are expected to have checked it already.
func (c *Client) DeleteVenue(ctx context.Context, sess session.Session, id domainvenue.VenueID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.endpoint("/venues/"+url.PathEscape(string(id)), nil), &sess, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil, domainvenue.ErrVenueNotFound)
}

var (
	_ domainvenue.Catalog = (*Client)(nil)
	_ domainvenue.Manager = (*Client)(nil)
)
