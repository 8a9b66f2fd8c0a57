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

package cmd

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
	"github.com/retr0h/docport/internal/identity"
	"github.com/retr0h/docport/internal/messaging"
)

// ownerChangeBuffer is the owner-change event buffer between the bus
// subscription and the identity cache.
const ownerChangeBuffer = 64

// compositeLifecycle manages multiple Lifecycle components, starting them
// sequentially and stopping them concurrently.
type compositeLifecycle struct {
	components []cli.Lifecycle
}

func (c *compositeLifecycle) Start() {
	for _, comp := range c.components {
		comp.Start()
	}
}

func (c *compositeLifecycle) Stop(ctx context.Context) {
	var wg sync.WaitGroup
	for _, comp := range c.components {
		wg.Add(1)
		go func(lc cli.Lifecycle) {
			defer wg.Done()
			lc.Stop(ctx)
		}(comp)
	}
	wg.Wait()
}

// cacheLifecycle runs the identity cache dispatcher and its owner-change
// subscription as one component.
type cacheLifecycle struct {
	logger *slog.Logger
	cache  *identity.Cache
	bus    *messaging.Bus

	cancel      context.CancelFunc
	unsubscribe func()
}

func (c *cacheLifecycle) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.cache.Start()

	events, unsubscribe, err := c.bus.SubscribeOwnerChanges(ownerChangeBuffer)
	if err != nil {
		cli.LogFatal(c.logger, "failed to subscribe to owner changes", err)
	}
	c.unsubscribe = unsubscribe

	c.cache.Track(ctx, events)
}

func (c *cacheLifecycle) Stop(ctx context.Context) {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	if c.cancel != nil {
		c.cancel()
	}

	c.cache.Stop(ctx)
}

// startCmd represents the top-level start command.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start all components (NATS, portal, admin API)",
	Long: `Start the embedded NATS server, document portal, and admin API in a
single process.

This is the recommended way to run docport on a single host. All components
start in order (NATS → portal → API) and shut down gracefully on
SIGINT/SIGTERM.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		cli.ValidateDistribution(logger)

		natsServer := setupNATSServer(logger.With("component", "nats"))
		bundle := setupPortal(logger.With("component", "portal"))
		apiServer := setupAPIServer(logger.With("component", "api"), bundle)

		components := append([]cli.Lifecycle{}, bundle.components...)
		components = append(components, apiServer)
		components = append(components, &natsLifecycle{server: natsServer})

		composite := &compositeLifecycle{components: components}

		composite.Start()
		cli.RunServer(ctx, composite, bundle.cleanups...)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
