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
	"log/slog"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

const (
	systemdCgroupPrefix = "1:name=systemd:"
	sandboxScopePrefix  = "xdg-app-"
	sandboxScopeSuffix  = ".scope"
)

// deriveAppID recovers the sandbox app id from pid's control-group
// membership. The second return is false when no identity could be derived;
// a resolved host process yields ("", true).
func (c *Cache) deriveAppID(
	pid uint32,
) (string, bool) {
	if exists, err := c.pidExists(int32(pid)); err == nil && !exists {
		c.logger.Debug(
			"peer process no longer exists",
			slog.Uint64("pid", uint64(pid)),
		)

		return "", false
	}

	cgroupPath := filepath.Join(c.procRoot, strconv.FormatUint(uint64(pid), 10), "cgroup")

	content, err := afero.ReadFile(c.appFs, cgroupPath)
	if err != nil {
		// Soft failure: the process may have exited, or /proc may be
		// restricted. The next Resolve retries.
		c.logger.Debug(
			"cannot read control-group membership",
			slog.String("path", cgroupPath),
			slog.String("error", err.Error()),
		)

		return "", false
	}

	return parseCgroupAppID(string(content))
}

// parseCgroupAppID scans control-group membership content for the systemd
// scope line and extracts the sandbox app id from its unit name.
//
// A scope of the form "xdg-app-<app>-<instance>.scope" resolves to <app>.
// Any other unit name is a non-sandboxed host process, which resolves to the
// empty app id. A scope matching the sandbox prefix and suffix but missing
// the internal separator is structurally inconsistent and yields no
// identity at all.
func parseCgroupAppID(
	content string,
) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, systemdCgroupPrefix) {
			continue
		}

		unit := strings.TrimPrefix(line, systemdCgroupPrefix)
		scope := path.Base(unit)

		if strings.HasPrefix(scope, sandboxScopePrefix) &&
			strings.HasSuffix(scope, sandboxScopeSuffix) {
			rest := strings.TrimPrefix(scope, sandboxScopePrefix)
			dash := strings.Index(rest, "-")
			if dash < 0 {
				return "", false
			}

			return rest[:dash], true
		}

		return "", true
	}

	return "", false
}
