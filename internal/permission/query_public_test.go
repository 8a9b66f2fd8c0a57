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

package permission_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/document"
	"github.com/retr0h/docport/internal/permission"
)

type QueryTestSuite struct {
	suite.Suite

	logger *slog.Logger
	entry  *document.Entry
}

func (s *QueryTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.entry = &document.Entry{
		URI: "file:///home/user/notes.txt",
		Permissions: map[string][]string{
			"org.example.Viewer": {"read"},
			"org.example.Editor": {"read", "write", "grant-permissions"},
		},
	}
}

func (s *QueryTestSuite) TestEffective() {
	tests := []struct {
		name  string
		appID string
		want  permission.Flags
	}{
		{
			name:  "empty app id is the owner sentinel",
			appID: "",
			want:  permission.All,
		},
		{
			name:  "granted app id",
			appID: "org.example.Editor",
			want:  permission.Read | permission.Write | permission.GrantPermissions,
		},
		{
			name:  "unknown app id has no permissions",
			appID: "org.example.Stranger",
			want:  0,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, permission.Effective(s.logger, s.entry, tt.appID))
		})
	}
}

func (s *QueryTestSuite) TestEffectiveOwnerIgnoresRecordContents() {
	empty := &document.Entry{URI: "file:///tmp/x"}

	s.Equal(permission.All, permission.Effective(s.logger, empty, ""))
}

func (s *QueryTestSuite) TestHas() {
	tests := []struct {
		name     string
		appID    string
		required permission.Flags
		want     bool
	}{
		{
			name:     "owner holds everything",
			appID:    "",
			required: permission.All,
			want:     true,
		},
		{
			name:     "subset of granted flags",
			appID:    "org.example.Editor",
			required: permission.Read | permission.Write,
			want:     true,
		},
		{
			name:     "missing flag",
			appID:    "org.example.Viewer",
			required: permission.Read | permission.Write,
			want:     false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, permission.Has(s.logger, s.entry, tt.appID, tt.required))
		})
	}
}

func TestQueryTestSuite(t *testing.T) {
	suite.Run(t, new(QueryTestSuite))
}
