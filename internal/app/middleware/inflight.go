package middleware

import (
	"context"
	"errors"
	"sync"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/queries"
)

// ErrActionInFlight rejects a second invocation of an action whose first
// attempt has not come back yet. The caller is expected to disable the
// triggering control while its flag is up, so hitting this error means the
// discipline broke down somewhere.
var ErrActionInFlight = errors.New("middleware: action already in flight")

// InFlightScoped lets a command or query narrow its busy-flag scope below
// the action key, e.g. per booking id so two different bookings can be
// mutated independently while one booking never accepts two concurrent
// mutations.
type InFlightScoped interface {
	InFlightScope() string
}

// InFlightRegistry holds the per-action busy flags. Distinct actions
// proceed independently; there is exactly one flag per action (or per
// action+scope).
type InFlightRegistry struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInFlightRegistry() *InFlightRegistry {
	return &InFlightRegistry{active: make(map[string]struct{})}
}

// InFlight reports whether the given action key is currently busy, letting
// callers disable the corresponding control.
func (r *InFlightRegistry) InFlight(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, busy := r.active[key]
	return busy
}

// Snapshot returns the set of currently busy action keys.
func (r *InFlightRegistry) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.active))
	for k := range r.active {
		keys = append(keys, k)
	}
	return keys
}

func (r *InFlightRegistry) begin(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.active[key]; busy {
		return false
	}
	r.active[key] = struct{}{}
	return true
}

func (r *InFlightRegistry) end(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, key)
}

func flightKey(key string, msg any) string {
	if scoped, ok := msg.(InFlightScoped); ok {
		if scope := scoped.InFlightScope(); scope != "" {
			return key + ":" + scope
		}
	}
	return key
}

// InFlight guards the command bus with at-most-one-in-flight per action.
func InFlight(registry *InFlightRegistry) CommandMiddleware {
	if registry == nil {
		panic("middleware: in-flight registry required")
	}
	return func(next commands.Bus) commands.Bus {
		nextFn := wrapCommand(next)
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			key := flightKey(cmd.Key(), cmd)
			if !registry.begin(key) {
				return nil, ErrActionInFlight
			}
			defer registry.end(key)
			return nextFn(ctx, cmd)
		})
	}
}

// QueryInFlight applies the same discipline to scoped queries. Queries
// without a scope pass through untouched: a plain read has no caller
// whose flag could narrow it, and a global flag would serialize
// unrelated callers.
func QueryInFlight(registry *InFlightRegistry) QueryMiddleware {
	if registry == nil {
		panic("middleware: in-flight registry required")
	}
	return func(next queries.Bus) queries.Bus {
		nextFn := wrapQuery(next)
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			scoped, ok := q.(InFlightScoped)
			if !ok || scoped.InFlightScope() == "" {
				return nextFn(ctx, q)
			}
			key := flightKey(q.Key(), q)
			if !registry.begin(key) {
				return nil, ErrActionInFlight
			}
			defer registry.end(key)
			return nextFn(ctx, q)
		})
	}
}
