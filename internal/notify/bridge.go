// Package notify implements the cross-view notification bridge: named
// boolean flags persisted outside any view's lifetime, with an
// in-process broadcast on every write.
//
// The producer (browse view) sets a flag after a successful apply; the
// consumer (navigation dock) renders an indicator and the applied view
// clears the flag when it becomes active. Flags live in the local
// database so concurrent client instances observe them too; instances
// pick up external writes on a poll tick.
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Flag names a feature-scoped boolean.
type Flag string

// FlagUnseenApplications is set when the jobseeker applies to a job and
// cleared when the applications view is visited.
const FlagUnseenApplications Flag = "has_unseen_applications"

// Store persists flags across process lifetimes.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// Subscriber is invoked on every flag write.
type Subscriber func(flag Flag, value bool)

// Bridge is the process-wide flag broadcaster. Safe for use from the
// Bubble Tea update loop; writes are last-writer-wins.
type Bridge struct {
	store Store
	mu    sync.Mutex
	subs  []Subscriber
	cache map[Flag]bool
}

// NewBridge creates a bridge backed by the given store. A nil store
// keeps flags in memory only.
func NewBridge(store Store) *Bridge {
	return &Bridge{
		store: store,
		cache: make(map[Flag]bool),
	}
}

// Subscribe registers a callback invoked on every Set.
func (b *Bridge) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Set writes the flag, persists it, and broadcasts to subscribers.
// Persistence failures are logged, not surfaced: the in-process signal
// still fires and the next successful write repairs the stored value.
func (b *Bridge) Set(ctx context.Context, flag Flag, value bool) {
	b.mu.Lock()
	b.cache[flag] = value
	subs := make([]Subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	if b.store != nil {
		if err := b.store.Set(ctx, storeKey(flag), value); err != nil {
			log.Error().Err(err).Str("flag", string(flag)).Msg("failed to persist notification flag")
		}
	}

	for _, fn := range subs {
		fn(flag, value)
	}
}

// Clear sets the flag to false (read-then-clear on the consuming view).
func (b *Bridge) Clear(ctx context.Context, flag Flag) {
	b.Set(ctx, flag, false)
}

// Get returns the current flag value. A missing or unreadable stored
// flag reads as false.
func (b *Bridge) Get(ctx context.Context, flag Flag) bool {
	if b.store != nil {
		var v bool
		if err := b.store.Get(ctx, storeKey(flag), &v); err == nil {
			b.mu.Lock()
			b.cache[flag] = v
			b.mu.Unlock()
			return v
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache[flag]
}

// Refresh re-reads a flag from the store and broadcasts if the value
// changed since last seen. Used by the poll tick to observe writes from
// other client instances.
func (b *Bridge) Refresh(ctx context.Context, flag Flag) {
	if b.store == nil {
		return
	}
	var v bool
	if err := b.store.Get(ctx, storeKey(flag), &v); err != nil {
		return
	}

	b.mu.Lock()
	changed := b.cache[flag] != v
	b.cache[flag] = v
	subs := make([]Subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(flag, v)
	}
}

func storeKey(flag Flag) string {
	return fmt.Sprintf("bridge/%s", flag)
}
