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

// Package document provides the stored document record and its id, name,
// and URI helpers.
package document

import (
	"time"
)

// Entry represents one document registered with the portal: the backing
// resource URI plus the permission tokens granted to each app id.
type Entry struct {
	// URI is the backing resource location (file scheme).
	URI string `json:"uri"`
	// Permissions maps an app id to its granted permission tokens.
	Permissions map[string][]string `json:"permissions"`
	// Created is when the document was first registered.
	Created time.Time `json:"created"`
}

// ListPermissions returns the permission tokens granted to appID. A missing
// grant yields an empty list.
func (e *Entry) ListPermissions(
	appID string,
) []string {
	if e.Permissions == nil {
		return []string{}
	}

	tokens, ok := e.Permissions[appID]
	if !ok {
		return []string{}
	}

	return tokens
}

// SetPermissions returns a copy of the entry with appID's tokens replaced.
// The receiver is not modified; stored entries are treated as immutable.
func (e *Entry) SetPermissions(
	appID string,
	tokens []string,
) *Entry {
	permissions := make(map[string][]string, len(e.Permissions)+1)
	for id, t := range e.Permissions {
		permissions[id] = t
	}

	if len(tokens) == 0 {
		delete(permissions, appID)
	} else {
		permissions[appID] = tokens
	}

	return &Entry{
		URI:         e.URI,
		Permissions: permissions,
		Created:     e.Created,
	}
}
