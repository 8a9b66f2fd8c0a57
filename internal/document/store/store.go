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

// Package store persists document entries in a NATS KV bucket.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/nats-io/nats.go"

	"github.com/retr0h/docport/internal/document"
	"github.com/retr0h/docport/internal/messaging"
)

// ErrNotFound is returned when no document exists for an id.
var ErrNotFound = errors.New("no such document")

// KV implements Store over a NATS KV bucket, one JSON-encoded entry per
// document id.
type KV struct {
	natsClient messaging.NATSClient
	bucket     string
}

// New creates a KV document store backed by bucket.
func New(
	natsClient messaging.NATSClient,
	bucket string,
) *KV {
	return &KV{
		natsClient: natsClient,
		bucket:     bucket,
	}
}

// Put stores entry under id, replacing any existing entry.
func (s *KV) Put(
	id string,
	entry *document.Entry,
) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", id, err)
	}

	if err := s.natsClient.KVPut(s.bucket, id, data); err != nil {
		return fmt.Errorf("failed to store document %s: %w", id, err)
	}

	return nil
}

// Get returns the entry stored under id, or ErrNotFound.
func (s *KV) Get(
	id string,
) (*document.Entry, error) {
	data, err := s.natsClient.KVGet(s.bucket, id)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		return nil, fmt.Errorf("failed to load document %s: %w", id, err)
	}

	var entry document.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	return &entry, nil
}

// Delete removes the entry stored under id. Deleting a missing id is not an
// error.
func (s *KV) Delete(
	id string,
) error {
	if err := s.natsClient.KVDelete(s.bucket, id); err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil
		}

		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}

	return nil
}

// List returns all stored document ids.
func (s *KV) List() ([]string, error) {
	ids, err := s.natsClient.KVKeys(s.bucket)
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return ids, nil
}

// LookupByPath returns the id and entry of the document backed by path, or
// an empty id when the path is not registered. Pre-existing documents are
// reused rather than registered twice.
func (s *KV) LookupByPath(
	path string,
) (string, *document.Entry, error) {
	ids, err := s.List()
	if err != nil {
		return "", nil, err
	}

	for _, id := range ids {
		entry, err := s.Get(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return "", nil, err
		}

		if entry.Path() == path {
			return id, entry, nil
		}
	}

	return "", nil, nil
}

// NewID picks a random unused document id.
func (s *KV) NewID() (string, error) {
	for {
		id := document.NameFromID(rand.Uint32())

		_, err := s.Get(id)
		if errors.Is(err, ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}
