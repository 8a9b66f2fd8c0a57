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

package portal_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/identity"
	"github.com/retr0h/docport/internal/portal"
)

type MetricsTestSuite struct {
	suite.Suite
}

func (s *MetricsTestSuite) TestRegisterCacheMetrics() {
	reg := prometheus.NewRegistry()
	stats := identity.Stats{
		Hits:      5,
		Misses:    3,
		Coalesced: 2,
		Failures:  1,
		Entries:   4,
	}

	portal.RegisterCacheMetrics(reg, func() identity.Stats {
		return stats
	})

	families, err := reg.Gather()
	s.Require().NoError(err)

	values := map[string]float64{}
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue() +
			mf.GetMetric()[0].GetGauge().GetValue()
	}

	s.Equal(5.0, values["docport_identity_cache_hits_total"])
	s.Equal(3.0, values["docport_identity_cache_misses_total"])
	s.Equal(2.0, values["docport_identity_cache_coalesced_total"])
	s.Equal(1.0, values["docport_identity_cache_failures_total"])
	s.Equal(4.0, values["docport_identity_cache_entries"])
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
