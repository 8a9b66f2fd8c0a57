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

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/retr0h/docport/internal/identity"
)

// Bus exposes the bus introspection service to the portal: per-peer
// credential queries and the name-ownership notification stream.
type Bus struct {
	logger        *slog.Logger
	nc            *nats.Conn
	pidSubject    string
	eventsSubject string
}

// Ensure Bus satisfies the identity cache's credential querier.
var _ identity.CredentialQuerier = (*Bus)(nil)

// NewBus creates a Bus over an established NATS connection.
func NewBus(
	logger *slog.Logger,
	nc *nats.Conn,
	pidSubject string,
	eventsSubject string,
) *Bus {
	return &Bus{
		logger:        logger,
		nc:            nc,
		pidSubject:    pidSubject,
		eventsSubject: eventsSubject,
	}
}

// PeerPID asks the bus introspection service for the numeric process id
// owning connectionName. The reply is a single decimal number.
func (b *Bus) PeerPID(
	ctx context.Context,
	connectionName string,
) (uint32, error) {
	msg, err := b.nc.RequestWithContext(ctx, b.pidSubject, []byte(connectionName))
	if err != nil {
		return 0, fmt.Errorf("credential query for %s: %w", connectionName, err)
	}

	pid, err := strconv.ParseUint(strings.TrimSpace(string(msg.Data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed credential reply %q: %w", msg.Data, err)
	}

	return uint32(pid), nil
}

// SubscribeOwnerChanges subscribes to the bus's name-ownership broadcast and
// delivers decoded events on the returned channel. Events are dropped when
// the consumer falls behind the buffer. The returned cancel function
// unsubscribes.
func (b *Bus) SubscribeOwnerChanges(
	buffer int,
) (<-chan identity.OwnerChange, func(), error) {
	events := make(chan identity.OwnerChange, buffer)

	sub, err := b.nc.Subscribe(b.eventsSubject, func(m *nats.Msg) {
		var ev identity.OwnerChange
		if err := json.Unmarshal(m.Data, &ev); err != nil {
			b.logger.Warn(
				"malformed owner-change event",
				slog.String("error", err.Error()),
			)

			return
		}

		select {
		case events <- ev:
		default:
			b.logger.Warn(
				"dropping owner-change event",
				slog.String("name", ev.Name),
			)
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", b.eventsSubject, err)
	}

	cancel := func() {
		_ = sub.Unsubscribe()
	}

	return events, cancel, nil
}
