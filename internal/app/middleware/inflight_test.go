package middleware

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/queries"
)

type blockingCommand struct {
	key   string
	scope string
}

func (c blockingCommand) Key() string { return c.key }

func (c blockingCommand) InFlightScope() string { return c.scope }

// gateBus parks every dispatch until released, so tests can observe the
// busy flag while a call is genuinely outstanding.
type gateBus struct {
	entered chan struct{}
	release chan struct{}
}

func (b *gateBus) Dispatch(ctx context.Context, cmd commands.Command) (any, error) {
	b.entered <- struct{}{}
	<-b.release
	return "done", nil
}

func TestInFlight_RejectsSecondInvocation(t *testing.T) {
	registry := NewInFlightRegistry()
	gate := &gateBus{entered: make(chan struct{}, 2), release: make(chan struct{})}
	bus := ChainCommands(gate, InFlight(registry))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bus.Dispatch(context.Background(), blockingCommand{key: "booking.create"})
		assert.NoError(t, err)
	}()
	<-gate.entered

	assert.True(t, registry.InFlight("booking.create"))

	_, err := bus.Dispatch(context.Background(), blockingCommand{key: "booking.create"})
	require.ErrorIs(t, err, ErrActionInFlight)

	close(gate.release)
	wg.Wait()
	assert.False(t, registry.InFlight("booking.create"), "flag must clear on completion")
}

func TestInFlight_DistinctActionsAreIndependent(t *testing.T) {
	registry := NewInFlightRegistry()
	gate := &gateBus{entered: make(chan struct{}, 2), release: make(chan struct{})}
	bus := ChainCommands(gate, InFlight(registry))

	var wg sync.WaitGroup
	for _, key := range []string{"booking.create", "booking.cancel"} {
		key := key
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := bus.Dispatch(context.Background(), blockingCommand{key: key})
			assert.NoError(t, err)
		}()
	}
	<-gate.entered
	<-gate.entered

	// both flags up at once: neither action blocked the other
	assert.True(t, registry.InFlight("booking.create"))
	assert.True(t, registry.InFlight("booking.cancel"))

	close(gate.release)
	wg.Wait()
}

func TestInFlight_ScopedFlagsSeparateBookings(t *testing.T) {
	registry := NewInFlightRegistry()
	gate := &gateBus{entered: make(chan struct{}, 2), release: make(chan struct{})}
	bus := ChainCommands(gate, InFlight(registry))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bus.Dispatch(context.Background(), blockingCommand{key: "booking.update_guests", scope: "b1"})
		assert.NoError(t, err)
	}()
	<-gate.entered

	// same booking: rejected
	_, err := bus.Dispatch(context.Background(), blockingCommand{key: "booking.update_guests", scope: "b1"})
	require.ErrorIs(t, err, ErrActionInFlight)

	// different booking: admitted
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bus.Dispatch(context.Background(), blockingCommand{key: "booking.update_guests", scope: "b2"})
		assert.NoError(t, err)
	}()
	<-gate.entered

	close(gate.release)
	wg.Wait()
}

type blockingQuery struct {
	key   string
	scope string
}

func (q blockingQuery) Key() string { return q.key }

func (q blockingQuery) InFlightScope() string { return q.scope }

type gateQueryBus struct {
	entered chan struct{}
	release chan struct{}
}

func (b *gateQueryBus) Ask(ctx context.Context, q queries.Query) (any, error) {
	b.entered <- struct{}{}
	<-b.release
	return "done", nil
}

func TestQueryInFlight_ScopedQueriesGuarded(t *testing.T) {
	registry := NewInFlightRegistry()
	gate := &gateQueryBus{entered: make(chan struct{}, 2), release: make(chan struct{})}
	bus := ChainQueries(gate, QueryInFlight(registry))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bus.Ask(context.Background(), blockingQuery{key: "dashboard.customer", scope: "alice"})
		assert.NoError(t, err)
	}()
	<-gate.entered

	_, err := bus.Ask(context.Background(), blockingQuery{key: "dashboard.customer", scope: "alice"})
	require.ErrorIs(t, err, ErrActionInFlight)

	// unscoped reads are never serialized
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bus.Ask(context.Background(), blockingQuery{key: "catalog.search"})
		assert.NoError(t, err)
	}()
	<-gate.entered

	close(gate.release)
	wg.Wait()
}

func TestInFlight_ErrorStillClearsFlag(t *testing.T) {
	registry := NewInFlightRegistry()
	failing := commands.NewInMemoryBus() // no handlers: every dispatch errors
	bus := ChainCommands(failing, InFlight(registry))

	_, err := bus.Dispatch(context.Background(), blockingCommand{key: "venue.delete"})
	require.Error(t, err)
	assert.False(t, registry.InFlight("venue.delete"))
}
