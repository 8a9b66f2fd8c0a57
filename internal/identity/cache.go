// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/afero"
)

const defaultQueryTimeout = 30 * time.Second

// resolution is the outcome delivered to one waiter.
type resolution struct {
	appID string
	err   error
}

// entry tracks the resolution state of one connection name. All fields are
// owned by the dispatcher goroutine.
type entry struct {
	// appID is nil while unresolved. The empty string is a valid resolved
	// value: an unsandboxed host peer. A resolved entry is terminal.
	appID *string
	// exited is set once a disconnect notification for this name arrives.
	exited bool
	// waiters holds one buffered channel per outstanding Resolve call, in
	// arrival order. Non-empty only while a credential query is in flight.
	waiters []chan<- resolution
}

// Cache maps bus connection names to sandbox app ids.
//
// All state transitions run on a single dispatcher goroutine; Resolve,
// query completions, and disconnect events are serialized as commands on
// one channel, so the entry table needs no locking.
type Cache struct {
	logger       *slog.Logger
	appFs        afero.Fs
	creds        CredentialQuerier
	procRoot     string
	queryTimeout time.Duration
	pidExists    func(pid int32) (bool, error)

	commands chan func()
	done     chan struct{}
	stopped  chan struct{}
	entries  map[string]*entry

	hits      atomic.Uint64
	misses    atomic.Uint64
	coalesced atomic.Uint64
	failures  atomic.Uint64
	size      atomic.Uint64
}

// Option configures the cache.
type Option func(*Cache)

// WithQueryTimeout bounds the bus credential query.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Cache) { c.queryTimeout = d }
}

// WithProcRoot overrides the process accounting root (default "/proc").
func WithProcRoot(root string) Option {
	return func(c *Cache) { c.procRoot = root }
}

// New creates a new identity cache. Start must be called before Resolve.
func New(
	appFs afero.Fs,
	logger *slog.Logger,
	creds CredentialQuerier,
	opts ...Option,
) *Cache {
	c := &Cache{
		logger:       logger,
		appFs:        appFs,
		creds:        creds,
		procRoot:     "/proc",
		queryTimeout: defaultQueryTimeout,
		pidExists:    process.PidExists,
		commands:     make(chan func()),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
		entries:      map[string]*entry{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start starts the dispatcher without blocking. Call Stop to shut down.
func (c *Cache) Start() {
	go c.run()
}

// Stop shuts the dispatcher down. Outstanding Resolve callers are released
// with ErrLookupFailed.
func (c *Cache) Stop(
	ctx context.Context,
) {
	close(c.done)

	select {
	case <-c.stopped:
	case <-ctx.Done():
		c.logger.Warn("identity cache shutdown timed out")
	}
}

func (c *Cache) run() {
	defer close(c.stopped)

	for {
		select {
		case cmd := <-c.commands:
			cmd()
		case <-c.done:
			return
		}
	}
}

// Resolve returns the app id behind connectionName, issuing the out-of-band
// credential lookup on first use. Concurrent calls for the same name share a
// single in-flight query and complete together, in arrival order.
//
// A caller whose ctx is cancelled stops waiting but stays enqueued; its slot
// receives the eventual answer into a buffered channel that is simply never
// read. Coalescing semantics are unaffected by cancellation.
func (c *Cache) Resolve(
	ctx context.Context,
	connectionName string,
) (string, error) {
	result := make(chan resolution, 1)

	select {
	case c.commands <- func() { c.resolve(connectionName, result) }:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", fmt.Errorf("identity cache stopped: %w", ErrLookupFailed)
	}

	select {
	case r := <-result:
		return r.appID, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", fmt.Errorf("identity cache stopped: %w", ErrLookupFailed)
	}
}

// Track consumes owner-change notifications until ctx is cancelled or the
// cache stops. Events indicating a fully departed peer invalidate the
// matching entry.
func (c *Cache) Track(
	ctx context.Context,
	events <-chan OwnerChange,
) {
	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case c.commands <- func() { c.ownerChanged(ev) }:
				case <-ctx.Done():
					return
				case <-c.done:
					return
				}
			case <-ctx.Done():
				return
			case <-c.done:
				return
			}
		}
	}()
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Coalesced: c.coalesced.Load(),
		Failures:  c.failures.Load(),
		Entries:   c.size.Load(),
	}
}

// resolve runs on the dispatcher.
func (c *Cache) resolve(
	connectionName string,
	result chan<- resolution,
) {
	e, ok := c.entries[connectionName]
	if !ok {
		e = &entry{}
		c.entries[connectionName] = e
		c.size.Store(uint64(len(c.entries)))
	}

	if e.appID != nil {
		c.hits.Add(1)
		result <- resolution{appID: *e.appID}

		return
	}

	if len(e.waiters) == 0 {
		c.misses.Add(1)
	} else {
		c.coalesced.Add(1)
	}

	e.waiters = append(e.waiters, result)

	// First waiter dispatches the single credential query for this name.
	if len(e.waiters) == 1 {
		c.logger.Debug(
			"dispatching credential query",
			slog.String("connection_name", connectionName),
		)
		go c.query(connectionName)
	}
}

// query performs the blocking bus round-trip off the dispatcher, then hands
// the outcome back to it.
func (c *Cache) query(
	connectionName string,
) {
	ctx, cancel := context.WithTimeout(context.Background(), c.queryTimeout)
	defer cancel()

	pid, err := c.creds.PeerPID(ctx, connectionName)

	select {
	case c.commands <- func() { c.complete(connectionName, pid, err) }:
	case <-c.done:
	}
}

// complete runs on the dispatcher, once per dispatched query.
func (c *Cache) complete(
	connectionName string,
	pid uint32,
	queryErr error,
) {
	e, ok := c.entries[connectionName]
	if !ok {
		return
	}

	// A peer that exited before the reply arrived must not be attributed a
	// freshly reused pid or stale cgroup contents.
	if e.exited {
		c.logger.Debug(
			"peer exited before credential reply",
			slog.String("connection_name", connectionName),
		)
	} else if queryErr != nil {
		c.logger.Debug(
			"credential query failed",
			slog.String("connection_name", connectionName),
			slog.String("error", queryErr.Error()),
		)
	} else {
		if appID, ok := c.deriveAppID(pid); ok {
			e.appID = &appID
		}
	}

	for _, w := range e.waiters {
		if e.appID != nil {
			w <- resolution{appID: *e.appID}
		} else {
			c.failures.Add(1)
			w <- resolution{err: ErrLookupFailed}
		}
	}
	e.waiters = nil

	// Failures are not cached; the next Resolve starts a fresh attempt.
	if e.appID == nil {
		delete(c.entries, connectionName)
	}
	c.size.Store(uint64(len(c.entries)))
}

// ownerChanged runs on the dispatcher.
func (c *Cache) ownerChanged(
	ev OwnerChange,
) {
	if !strings.HasPrefix(ev.Name, ":") ||
		ev.Name != ev.OldOwner ||
		ev.NewOwner != "" {
		return
	}

	e, ok := c.entries[ev.Name]
	if !ok {
		return
	}

	e.exited = true

	// With a query in flight the completion handler fails the waiters and
	// evicts; with nothing pending there is no reason to retain the entry.
	if len(e.waiters) == 0 {
		delete(c.entries, ev.Name)
		c.size.Store(uint64(len(c.entries)))
	}
}
