package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrFetchFailed marks transport-level failures: connection refused, DNS,
// timeouts. It is distinct from a rejection the service itself produced.
var ErrFetchFailed = errors.New("catalog: fetch failed")

// RemoteError carries the service's own rejection message, verbatim, so
// callers can surface exactly what the service said.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("catalog: service rejected request (%d): %s", e.Status, e.Message)
}

// errorEnvelope is the service's error body shape.
type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// rejection turns a non-2xx response into an error. 404 maps to the
// caller-supplied not-found sentinel; everything else becomes a
// RemoteError with the first envelope message, falling back to a generic
// message when the body is not the documented shape.
func rejection(resp *http.Response, notFound error) error {
	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	message := "request rejected"
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil && len(envelope.Errors) > 0 {
			if msg := strings.TrimSpace(envelope.Errors[0].Message); msg != "" {
				message = msg
			}
		}
	}
	return &RemoteError{Status: resp.StatusCode, Message: message}
}
