package memory

import (
	"context"
	"sync"
	"time"

	appoutbox "venuebook/internal/app/outbox"
	infraoutbox "venuebook/internal/infra/outbox"
)

// Outbox is the in-memory counterpart of the mongo outbox store. It backs
// dev runs: events still flow through the worker to whatever producer is
// configured, they just do not survive a restart.
type Outbox struct {
	mu    sync.Mutex
	items map[string]*infraoutbox.EventDocument
	order []string
}

func NewOutbox() *Outbox {
	return &Outbox{items: make(map[string]*infraoutbox.EventDocument)}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := time.Now().UTC()
	o.items[record.ID] = &infraoutbox.EventDocument{
		ID:          record.ID,
		Name:        record.Name,
		Payload:     record.Payload,
		OccurredAt:  record.OccurredAt,
		Aggregate:   record.Aggregate,
		Headers:     record.Headers,
		State:       "NEW",
		NextAttempt: now,
	}
	o.order = append(o.order, record.ID)
	return nil
}

func (o *Outbox) Claim(ctx context.Context, workerID string) (*infraoutbox.EventDocument, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	now := time.Now().UTC()
	for _, id := range o.order {
		doc := o.items[id]
		if doc == nil {
			continue
		}
		if (doc.State == "NEW" || doc.State == "FAILED") && !doc.NextAttempt.After(now) {
			doc.State = "CLAIMED"
			doc.ClaimedBy = workerID
			doc.ClaimedAt = now
			copied := *doc
			return &copied, nil
		}
	}
	return nil, nil
}

func (o *Outbox) MarkSent(ctx context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if doc, ok := o.items[id]; ok {
		doc.State = "SENT"
		doc.SentAt = time.Now().UTC()
	}
	return nil
}

func (o *Outbox) MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if doc, ok := o.items[id]; ok {
		doc.State = "FAILED"
		doc.NextAttempt = next
		doc.LastError = errMsg
		doc.Attempts++
	}
	return nil
}

var _ infraoutbox.Store = (*Outbox)(nil)
