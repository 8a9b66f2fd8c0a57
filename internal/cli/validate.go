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

package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// hostInfoFn is overridable for testing.
var hostInfoFn = host.Info

// supportedVersions maps distributions to the versions the portal's
// process-accounting lookups are known to work on.
var supportedVersions = map[string][]string{
	"ubuntu": {"20.04", "22.04", "24.04"},
}

// IsLinuxVersionSupported reports whether the given distribution and
// version carry the systemd cgroup layout the portal depends on.
func IsLinuxVersionSupported(
	distro string,
	version string,
) bool {
	versions, ok := supportedVersions[strings.ToLower(distro)]
	if !ok {
		return false
	}

	for _, v := range versions {
		if v == version {
			return true
		}
	}

	return false
}

// ValidateDistribution exits unless running on a supported Linux
// distribution. Set IGNORE_LINUX to bypass the check during development.
func ValidateDistribution(
	logger *slog.Logger,
) {
	if os.Getenv("IGNORE_LINUX") != "" {
		return
	}

	info, err := hostInfoFn()
	if err != nil {
		LogFatal(logger, "failed to gather host info", err)
		return
	}

	if !IsLinuxVersionSupported(info.Platform, info.PlatformVersion) {
		LogFatal(logger, "unsupported distribution", nil,
			"platform", info.Platform,
			"version", info.PlatformVersion,
		)
	}
}
