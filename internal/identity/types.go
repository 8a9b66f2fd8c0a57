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

// Package identity resolves the sandbox app id behind a bus connection name.
//
// A peer addresses the portal with an ephemeral bus-assigned connection name.
// The cache maps that name to a stable app id by asking the bus introspection
// service for the peer's process id and reading the process's control-group
// membership file. Each name is looked up at most once, concurrent requests
// for the same name share one in-flight query, and entries are invalidated
// when the peer disconnects.
package identity

import (
	"context"
	"errors"
)

// ErrLookupFailed is returned by Resolve when the peer's app id cannot be
// determined: the credential query failed or timed out, the peer exited
// before the reply arrived, or its sandbox scope name was malformed. Failed
// lookups are never cached; a later Resolve starts over.
var ErrLookupFailed = errors.New("can't find app id")

// CredentialQuerier asks the bus introspection service for the numeric
// process id owning a connection name.
type CredentialQuerier interface {
	// PeerPID returns the process id of the peer owning connectionName.
	PeerPID(ctx context.Context, connectionName string) (uint32, error)
}

// OwnerChange is one event from the bus's name-ownership notification
// stream.
type OwnerChange struct {
	// Name is the bus name whose ownership changed.
	Name string `json:"name"`
	// OldOwner is the connection name of the previous owner, or empty.
	OldOwner string `json:"old_owner"`
	// NewOwner is the connection name of the next owner, or empty when the
	// peer departed without replacement.
	NewOwner string `json:"new_owner"`
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	// Hits counts resolves answered from a cached app id.
	Hits uint64 `json:"hits"`
	// Misses counts resolves that had to wait for a credential query.
	Misses uint64 `json:"misses"`
	// Coalesced counts waiters that attached to an already in-flight query.
	Coalesced uint64 `json:"coalesced"`
	// Failures counts waiters completed with ErrLookupFailed.
	Failures uint64 `json:"failures"`
	// Entries is the current number of tracked connection names.
	Entries uint64 `json:"entries"`
}
