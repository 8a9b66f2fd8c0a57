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

package store

import (
	"github.com/retr0h/docport/internal/document"
)

// Store defines the interface for document persistence.
type Store interface {
	// Put stores entry under id, replacing any existing entry.
	Put(id string, entry *document.Entry) error
	// Get returns the entry stored under id, or ErrNotFound.
	Get(id string) (*document.Entry, error)
	// Delete removes the entry stored under id.
	Delete(id string) error
	// List returns all stored document ids.
	List() ([]string, error)
	// LookupByPath returns the document backed by path, or an empty id.
	LookupByPath(path string) (string, *document.Entry, error)
	// NewID picks a random unused document id.
	NewID() (string, error)
}

// Ensure KV implements Store interface
var _ Store = (*KV)(nil)
