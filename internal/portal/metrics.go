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

package portal

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/retr0h/docport/internal/identity"
)

// RegisterCacheMetrics exposes identity cache counters on a Prometheus
// registry. statsFn is read at scrape time.
func RegisterCacheMetrics(
	reg prometheus.Registerer,
	statsFn func() identity.Stats,
) {
	counters := []struct {
		name  string
		help  string
		value func(identity.Stats) uint64
	}{
		{
			name:  "docport_identity_cache_hits_total",
			help:  "Resolutions answered from the cache.",
			value: func(s identity.Stats) uint64 { return s.Hits },
		},
		{
			name:  "docport_identity_cache_misses_total",
			help:  "Resolutions requiring a credential query.",
			value: func(s identity.Stats) uint64 { return s.Misses },
		},
		{
			name:  "docport_identity_cache_coalesced_total",
			help:  "Resolutions attached to an in-flight query.",
			value: func(s identity.Stats) uint64 { return s.Coalesced },
		},
		{
			name:  "docport_identity_cache_failures_total",
			help:  "Resolutions that failed identity lookup.",
			value: func(s identity.Stats) uint64 { return s.Failures },
		},
	}

	for _, c := range counters {
		value := c.value
		reg.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{Name: c.name, Help: c.help},
			func() float64 { return float64(value(statsFn())) },
		))
	}

	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "docport_identity_cache_entries",
			Help: "Entries currently cached.",
		},
		func() float64 { return float64(statsFn().Entries) },
	))
}
