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

package store_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/document"
	"github.com/retr0h/docport/internal/document/store"
	messagingmocks "github.com/retr0h/docport/internal/messaging/mocks"
)

const testBucket = "documents"

type StoreTestSuite struct {
	suite.Suite

	mockCtrl       *gomock.Controller
	mockNATSClient *messagingmocks.MockNATSClient
	store          *store.KV
}

func (s *StoreTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNATSClient = messagingmocks.NewMockNATSClient(s.mockCtrl)
	s.store = store.New(s.mockNATSClient, testBucket)
}

func (s *StoreTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StoreTestSuite) entryJSON(
	entry *document.Entry,
) []byte {
	data, err := json.Marshal(entry)
	s.Require().NoError(err)

	return data
}

func (s *StoreTestSuite) TestPutGetRoundTrip() {
	entry := &document.Entry{
		URI:         "file:///home/user/notes.txt",
		Permissions: map[string][]string{"org.example.A.B": {"read"}},
	}

	s.mockNATSClient.EXPECT().
		KVPut(testBucket, "a1b2", gomock.Any()).
		Return(nil)
	s.mockNATSClient.EXPECT().
		KVGet(testBucket, "a1b2").
		Return(s.entryJSON(entry), nil)

	s.Require().NoError(s.store.Put("a1b2", entry))

	got, err := s.store.Get("a1b2")
	s.Require().NoError(err)
	s.Equal(entry.URI, got.URI)
	s.Equal(entry.Permissions, got.Permissions)
}

func (s *StoreTestSuite) TestGetNotFound() {
	s.mockNATSClient.EXPECT().
		KVGet(testBucket, "dead").
		Return(nil, nats.ErrKeyNotFound)

	_, err := s.store.Get("dead")

	s.ErrorIs(err, store.ErrNotFound)
}

func (s *StoreTestSuite) TestGetTransportError() {
	s.mockNATSClient.EXPECT().
		KVGet(testBucket, "a1").
		Return(nil, errors.New("connection lost"))

	_, err := s.store.Get("a1")

	s.Error(err)
	s.NotErrorIs(err, store.ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteMissingIsNotAnError() {
	s.mockNATSClient.EXPECT().
		KVDelete(testBucket, "dead").
		Return(nats.ErrKeyNotFound)

	s.NoError(s.store.Delete("dead"))
}

func (s *StoreTestSuite) TestListEmptyBucket() {
	s.mockNATSClient.EXPECT().
		KVKeys(testBucket).
		Return(nil, nats.ErrNoKeysFound)

	ids, err := s.store.List()

	s.NoError(err)
	s.Empty(ids)
}

func (s *StoreTestSuite) TestLookupByPath() {
	first := &document.Entry{URI: "file:///tmp/a.txt"}
	second := &document.Entry{URI: "file:///tmp/b.txt"}

	s.mockNATSClient.EXPECT().
		KVKeys(testBucket).
		Return([]string{"1a", "2b"}, nil)
	s.mockNATSClient.EXPECT().
		KVGet(testBucket, "1a").
		Return(s.entryJSON(first), nil)
	s.mockNATSClient.EXPECT().
		KVGet(testBucket, "2b").
		Return(s.entryJSON(second), nil)

	id, entry, err := s.store.LookupByPath("/tmp/b.txt")

	s.Require().NoError(err)
	s.Equal("2b", id)
	s.Equal("file:///tmp/b.txt", entry.URI)
}

func (s *StoreTestSuite) TestLookupByPathUnregistered() {
	s.mockNATSClient.EXPECT().
		KVKeys(testBucket).
		Return([]string{}, nil)

	id, entry, err := s.store.LookupByPath("/tmp/missing.txt")

	s.Require().NoError(err)
	s.Equal("", id)
	s.Nil(entry)
}

func (s *StoreTestSuite) TestNewIDRetriesOnCollision() {
	// First candidate collides, second is free.
	taken := s.entryJSON(&document.Entry{URI: "file:///tmp/a"})
	gomock.InOrder(
		s.mockNATSClient.EXPECT().
			KVGet(testBucket, gomock.Any()).
			Return(taken, nil),
		s.mockNATSClient.EXPECT().
			KVGet(testBucket, gomock.Any()).
			Return(nil, nats.ErrKeyNotFound),
	)

	id, err := s.store.NewID()

	s.Require().NoError(err)
	s.NotEmpty(id)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
