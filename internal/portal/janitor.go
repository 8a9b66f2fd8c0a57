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
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/spf13/afero"

	"github.com/retr0h/docport/internal/document/store"
)

// Janitor periodically drops document entries whose backing path no longer
// exists on the host filesystem.
type Janitor struct {
	logger   *slog.Logger
	store    store.Store
	appFs    afero.Fs
	schedule string
	cron     *cron.Cron
}

// NewJanitor creates a Janitor with a cron schedule, e.g. "@hourly".
func NewJanitor(
	logger *slog.Logger,
	s store.Store,
	appFs afero.Fs,
	schedule string,
) *Janitor {
	return &Janitor{
		logger:   logger,
		store:    s,
		appFs:    appFs,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start schedules the sweep without blocking. Call Stop to shut down.
func (j *Janitor) Start() {
	if _, err := j.cron.AddFunc(j.schedule, j.Sweep); err != nil {
		j.logger.Error(
			"failed to schedule janitor",
			slog.String("schedule", j.schedule),
			slog.String("error", err.Error()),
		)

		return
	}

	j.logger.Info(
		"janitor scheduled",
		slog.String("schedule", j.schedule),
	)
	j.cron.Start()
}

// Stop halts the schedule, waiting for a running sweep to finish or the
// context deadline to expire.
func (j *Janitor) Stop(
	ctx context.Context,
) {
	done := j.cron.Stop().Done()

	select {
	case <-done:
		j.logger.Info("janitor stopped gracefully")
	case <-ctx.Done():
		j.logger.Warn("janitor shutdown timed out")
	}
}

// Sweep deletes entries whose backing path is gone. Stat errors other than
// not-exist leave the entry alone.
func (j *Janitor) Sweep() {
	ids, err := j.store.List()
	if err != nil {
		j.logger.Error(
			"janitor list failed",
			slog.String("error", err.Error()),
		)

		return
	}

	removed := 0
	for _, id := range ids {
		entry, err := j.store.Get(id)
		if err != nil {
			continue
		}

		path := entry.Path()
		if path == "" {
			continue
		}

		exists, err := afero.Exists(j.appFs, path)
		if err != nil || exists {
			continue
		}

		if err := j.store.Delete(id); err != nil {
			j.logger.Error(
				"janitor delete failed",
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
			continue
		}

		j.logger.Info(
			"stale document removed",
			slog.String("id", id),
			slog.String("path", path),
		)
		removed++
	}

	if removed > 0 {
		j.logger.Info(
			"janitor sweep complete",
			slog.Int("removed", removed),
		)
	}
}
