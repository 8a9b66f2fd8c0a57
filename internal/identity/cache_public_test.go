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

package identity_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/identity"
	"github.com/retr0h/docport/internal/identity/mocks"
)

const sandboxCgroup = "1:name=systemd:/user.slice/xdg-app-myapp-12345.scope\n"

type CacheTestSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	mockCreds *mocks.MockCredentialQuerier
	appFs     afero.Fs
	cache     *identity.Cache
}

func (s *CacheTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCreds = mocks.NewMockCredentialQuerier(s.mockCtrl)
	s.appFs = afero.NewMemMapFs()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cache = identity.New(s.appFs, logger, s.mockCreds)
	s.cache.SetPIDExists(func(_ int32) (bool, error) { return true, nil })
	s.cache.Start()
}

func (s *CacheTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.cache.Stop(ctx)
	s.mockCtrl.Finish()
}

func (s *CacheTestSuite) writeCgroup(
	pid string,
	content string,
) {
	err := afero.WriteFile(s.appFs, "/proc/"+pid+"/cgroup", []byte(content), 0o644)
	s.Require().NoError(err)
}

func (s *CacheTestSuite) TestResolve() {
	tests := []struct {
		name           string
		connectionName string
		pid            uint32
		content        string
		wantAppID      string
		wantErr        bool
	}{
		{
			name:           "resolves sandboxed app id",
			connectionName: ":1.10",
			pid:            110,
			content:        sandboxCgroup,
			wantAppID:      "myapp",
		},
		{
			name:           "resolves host process to empty app id",
			connectionName: ":1.11",
			pid:            111,
			content:        "1:name=systemd:/system.slice/other.service\n",
			wantAppID:      "",
		},
		{
			name:           "fails on scope missing instance separator",
			connectionName: ":1.12",
			pid:            112,
			content:        "1:name=systemd:/xdg-app-noinstancemarker.scope\n",
			wantErr:        true,
		},
		{
			name:           "fails when no recognized line present",
			connectionName: ":1.13",
			pid:            113,
			content:        "2:cpu:/user.slice\n",
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockCreds.EXPECT().
				PeerPID(gomock.Any(), tt.connectionName).
				Return(tt.pid, nil).
				Times(1)
			s.writeCgroup(strconv.Itoa(int(tt.pid)), tt.content)

			appID, err := s.cache.Resolve(context.Background(), tt.connectionName)

			if tt.wantErr {
				s.ErrorIs(err, identity.ErrLookupFailed)
			} else {
				s.NoError(err)
				s.Equal(tt.wantAppID, appID)
			}
		})
	}
}

func (s *CacheTestSuite) TestResolveCachesResult() {
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.42").
		Return(uint32(123), nil).
		Times(1)
	s.writeCgroup("123", sandboxCgroup)

	for range 3 {
		appID, err := s.cache.Resolve(context.Background(), ":1.42")

		s.NoError(err)
		s.Equal("myapp", appID)
	}

	s.Equal(uint64(2), s.cache.Stats().Hits)
}

func (s *CacheTestSuite) TestResolveMissingCgroupFile() {
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.42").
		Return(uint32(123), nil).
		Times(1)

	_, err := s.cache.Resolve(context.Background(), ":1.42")

	s.ErrorIs(err, identity.ErrLookupFailed)
}

func (s *CacheTestSuite) TestResolveDeadPeer() {
	s.cache.SetPIDExists(func(_ int32) (bool, error) { return false, nil })
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.42").
		Return(uint32(123), nil).
		Times(1)
	s.writeCgroup("123", sandboxCgroup)

	_, err := s.cache.Resolve(context.Background(), ":1.42")

	s.ErrorIs(err, identity.ErrLookupFailed)
}

func (s *CacheTestSuite) TestFailedLookupIsNotCached() {
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.42").
		Return(uint32(0), errors.New("no such connection")).
		Times(2)

	for range 2 {
		_, err := s.cache.Resolve(context.Background(), ":1.42")
		s.ErrorIs(err, identity.ErrLookupFailed)
	}

	s.Equal(uint64(0), s.cache.Stats().Entries)
}

func (s *CacheTestSuite) TestConcurrentResolvesShareOneQuery() {
	gate := make(chan struct{})
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.7").
		DoAndReturn(func(_ context.Context, _ string) (uint32, error) {
			<-gate
			return uint32(123), nil
		}).
		Times(1)
	s.writeCgroup("123", sandboxCgroup)

	type outcome struct {
		appID string
		err   error
	}
	results := make(chan outcome, 2)

	for range 2 {
		go func() {
			appID, err := s.cache.Resolve(context.Background(), ":1.7")
			results <- outcome{appID: appID, err: err}
		}()
	}

	// Both callers must be enqueued on the single in-flight query before
	// the credential reply is released.
	s.Eventually(func() bool {
		return s.cache.Stats().Coalesced == 1
	}, time.Second, 5*time.Millisecond)

	close(gate)

	for range 2 {
		r := <-results
		s.NoError(r.err)
		s.Equal("myapp", r.appID)
	}
}

func (s *CacheTestSuite) TestDisconnectEvictsIdleEntry() {
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.42").
		Return(uint32(123), nil).
		Times(2)
	s.writeCgroup("123", sandboxCgroup)

	events := make(chan identity.OwnerChange)
	s.cache.Track(context.Background(), events)

	appID, err := s.cache.Resolve(context.Background(), ":1.42")
	s.NoError(err)
	s.Equal("myapp", appID)

	events <- identity.OwnerChange{Name: ":1.42", OldOwner: ":1.42", NewOwner: ""}

	s.Eventually(func() bool {
		return s.cache.Stats().Entries == 0
	}, time.Second, 5*time.Millisecond)

	// The entry is gone, so the next resolve starts a fresh query.
	appID, err = s.cache.Resolve(context.Background(), ":1.42")
	s.NoError(err)
	s.Equal("myapp", appID)
}

func (s *CacheTestSuite) TestDisconnectDuringInFlightQuery() {
	gate := make(chan struct{})
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.9").
		DoAndReturn(func(_ context.Context, _ string) (uint32, error) {
			<-gate
			return uint32(123), nil
		}).
		Times(1)
	s.writeCgroup("123", sandboxCgroup)

	events := make(chan identity.OwnerChange)
	s.cache.Track(context.Background(), events)

	errs := make(chan error, 1)
	go func() {
		_, err := s.cache.Resolve(context.Background(), ":1.9")
		errs <- err
	}()

	s.Eventually(func() bool {
		return s.cache.Stats().Misses == 1
	}, time.Second, 5*time.Millisecond)

	// Peer departs while the credential query is still outstanding. The
	// waiter must complete with failure when the reply arrives, not be
	// attributed the stale pid.
	events <- identity.OwnerChange{Name: ":1.9", OldOwner: ":1.9", NewOwner: ""}
	close(gate)

	s.ErrorIs(<-errs, identity.ErrLookupFailed)

	s.Eventually(func() bool {
		return s.cache.Stats().Entries == 0
	}, time.Second, 5*time.Millisecond)
}

func (s *CacheTestSuite) TestDisconnectFiltering() {
	events := make(chan identity.OwnerChange)
	s.cache.Track(context.Background(), events)

	tests := []struct {
		name string
		ev   identity.OwnerChange
	}{
		{
			name: "unknown connection name is ignored",
			ev:   identity.OwnerChange{Name: ":1.99", OldOwner: ":1.99", NewOwner: ""},
		},
		{
			name: "well-known names are ignored",
			ev:   identity.OwnerChange{Name: "org.example.Service", OldOwner: ":1.4", NewOwner: ""},
		},
		{
			name: "ownership transfers are ignored",
			ev:   identity.OwnerChange{Name: ":1.4", OldOwner: ":1.4", NewOwner: ":1.5"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			events <- tt.ev

			s.Equal(uint64(0), s.cache.Stats().Entries)
		})
	}
}

func (s *CacheTestSuite) TestCancelledWaiterDoesNotBlockOthers() {
	gate := make(chan struct{})
	s.mockCreds.EXPECT().
		PeerPID(gomock.Any(), ":1.3").
		DoAndReturn(func(_ context.Context, _ string) (uint32, error) {
			<-gate
			return uint32(123), nil
		}).
		Times(1)
	s.writeCgroup("123", sandboxCgroup)

	ctx, cancel := context.WithCancel(context.Background())
	cancelled := make(chan error, 1)
	go func() {
		_, err := s.cache.Resolve(ctx, ":1.3")
		cancelled <- err
	}()

	s.Eventually(func() bool {
		return s.cache.Stats().Misses == 1
	}, time.Second, 5*time.Millisecond)

	results := make(chan string, 1)
	go func() {
		appID, _ := s.cache.Resolve(context.Background(), ":1.3")
		results <- appID
	}()

	s.Eventually(func() bool {
		return s.cache.Stats().Coalesced == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.ErrorIs(<-cancelled, context.Canceled)

	close(gate)
	s.Equal("myapp", <-results)
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
