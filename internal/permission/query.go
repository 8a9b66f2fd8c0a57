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

package permission

import (
	"log/slog"

	"github.com/retr0h/docport/internal/document"
)

// Effective computes the permission flags appID holds on entry. The empty
// app id denotes an unsandboxed host requester, which always holds the full
// permission set.
func Effective(
	logger *slog.Logger,
	entry *document.Entry,
	appID string,
) Flags {
	if appID == "" {
		return All
	}

	return Parse(logger, entry.ListPermissions(appID))
}

// Has reports whether appID holds every flag in required on entry.
func Has(
	logger *slog.Logger,
	entry *document.Entry,
	appID string,
	required Flags,
) bool {
	return Effective(logger, entry, appID)&required == required
}
