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
	"log/slog"
	"time"

	natsclient "github.com/osapi-io/nats-client/pkg/client"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/retr0h/docport/internal/api"
	"github.com/retr0h/docport/internal/cli"
	"github.com/retr0h/docport/internal/document/store"
	"github.com/retr0h/docport/internal/identity"
	"github.com/retr0h/docport/internal/messaging"
	"github.com/retr0h/docport/internal/portal"
)

// defaultLookupTimeout bounds per-peer credential queries when the config
// does not set one.
const defaultLookupTimeout = 30 * time.Second

// connectNATS connects a NATS client from the connection config.
func connectNATS(
	log *slog.Logger,
) messaging.NATSClient {
	connCfg := appConfig.NATS.Connection

	var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
		Host: connCfg.Host,
		Port: connCfg.Port,
		Auth: cli.BuildNATSAuthOptions(connCfg.Auth),
		Name: connCfg.ClientName,
	})

	if err := nc.Connect(); err != nil {
		cli.LogFatal(log, "failed to connect to NATS", err)
	}

	return nc
}

// portalBundle holds the portal's wired components.
type portalBundle struct {
	nc       messaging.NATSClient
	cache    *identity.Cache
	store    store.Store
	registry *prometheus.Registry

	components []cli.Lifecycle
	cleanups   []func()
}

// setupPortal connects to NATS and wires the identity cache, document
// store, portal server, and janitor.
func setupPortal(
	log *slog.Logger,
) *portalBundle {
	nc := connectNATS(log)

	if _, err := nc.CreateKVBucket(appConfig.Portal.Bucket); err != nil {
		cli.LogFatal(log, "failed to create KV bucket", err)
	}

	conn := cli.NATSConn(nc)
	if conn == nil {
		cli.LogFatal(log, "failed to obtain raw NATS connection", nil)
	}

	bus := messaging.NewBus(
		log,
		conn,
		appConfig.Bus.PIDSubject,
		appConfig.Bus.EventsSubject,
	)

	lookupTimeout := defaultLookupTimeout
	if d, err := time.ParseDuration(appConfig.Portal.LookupTimeout); err == nil && d > 0 {
		lookupTimeout = d
	}

	cacheOpts := []identity.Option{identity.WithQueryTimeout(lookupTimeout)}
	if appConfig.Portal.ProcRoot != "" {
		cacheOpts = append(cacheOpts, identity.WithProcRoot(appConfig.Portal.ProcRoot))
	}
	cache := identity.New(appFs, log, bus, cacheOpts...)

	docStore := store.New(nc, appConfig.Portal.Bucket)
	handler := portal.NewHandler(log, docStore, cache)
	server := portal.NewServer(log, conn, handler)

	registry := prometheus.NewRegistry()
	portal.RegisterCacheMetrics(registry, cache.Stats)

	b := &portalBundle{
		nc:       nc,
		cache:    cache,
		store:    docStore,
		registry: registry,
	}

	b.components = append(b.components, &cacheLifecycle{cache: cache, bus: bus, logger: log})
	b.components = append(b.components, server)

	if appConfig.Portal.Janitor.Enabled {
		janitor := portal.NewJanitor(
			log,
			docStore,
			appFs,
			appConfig.Portal.Janitor.Schedule,
		)
		b.components = append(b.components, janitor)
	}

	b.cleanups = append(b.cleanups, func() {
		cli.CloseNATSClient(nc)
	})

	return b
}

// setupAPIServer creates the admin API server over the portal's store and
// cache stats.
func setupAPIServer(
	log *slog.Logger,
	b *portalBundle,
) *api.Server {
	return api.New(
		appConfig,
		log,
		api.WithDocumentStore(b.store),
		api.WithCacheStats(b.cache.Stats),
		api.WithMetricsRegistry(b.registry),
	)
}
