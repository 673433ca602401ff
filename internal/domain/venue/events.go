package venue

import "time"

type VenueDeleted struct {
	VenueID VenueID
	Owner   string
	At      time.Time
}

func (e VenueDeleted) EventName() string     { return "venue.deleted" }
func (e VenueDeleted) AggregateID() string   { return string(e.VenueID) }
func (e VenueDeleted) OccurredAt() time.Time { return e.At }
