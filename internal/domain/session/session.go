package session

import (
	"errors"
	"strings"
)

var (
	ErrNotAuthenticated = errors.New("session: authentication required")
	ErrManagerRequired  = errors.New("session: venue manager role required")
)

// Session carries the caller's identity explicitly through every
// authenticated operation. Nothing reads credentials ambiently; a handler
// either receives a valid Session or fails before any network call.
type Session struct {
	Name         string
	Email        string
	AccessToken  string
	VenueManager bool
}

func New(name, email, accessToken string, venueManager bool) Session {
	return Session{
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		AccessToken:  strings.TrimSpace(accessToken),
		VenueManager: venueManager,
	}
}

func (s Session) Authenticated() bool {
	return s.Name != "" && s.AccessToken != ""
}

func (s Session) Validate() error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

func (s Session) RequireManager() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.VenueManager {
		return ErrManagerRequired
	}
	return nil
}
