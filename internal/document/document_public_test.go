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

package document_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/document"
)

type DocumentTestSuite struct {
	suite.Suite
}

func (s *DocumentTestSuite) TestIDNameRoundTrip() {
	tests := []struct {
		name string
		id   uint32
		want string
	}{
		{
			name: "zero",
			id:   0,
			want: "0",
		},
		{
			name: "small id",
			id:   255,
			want: "ff",
		},
		{
			name: "max id",
			id:   0xffffffff,
			want: "ffffffff",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			name := document.NameFromID(tt.id)

			s.Equal(tt.want, name)
			s.Equal(tt.id, document.IDFromName(name))
		})
	}
}

func (s *DocumentTestSuite) TestIDFromNameMalformed() {
	s.Equal(uint32(0), document.IDFromName("not-hex"))
}

func (s *DocumentTestSuite) TestIsValidAppName() {
	tests := []struct {
		name    string
		appName string
		want    bool
	}{
		{
			name:    "three elements",
			appName: "org.example.App",
			want:    true,
		},
		{
			name:    "underscores and digits",
			appName: "org.example_1.App2",
			want:    true,
		},
		{
			name:    "two elements only",
			appName: "org.example",
			want:    false,
		},
		{
			name:    "empty",
			appName: "",
			want:    false,
		},
		{
			name:    "leading period",
			appName: ".org.example.App",
			want:    false,
		},
		{
			name:    "element starting with digit",
			appName: "org.1example.App",
			want:    false,
		},
		{
			name:    "dash not allowed",
			appName: "org.exam-ple.App",
			want:    false,
		},
		{
			name:    "empty element",
			appName: "org..App",
			want:    false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, document.IsValidAppName(tt.appName))
		})
	}
}

func (s *DocumentTestSuite) TestURIHelpers() {
	entry := &document.Entry{URI: "file:///home/user/docs/notes.txt"}

	s.Equal("/home/user/docs/notes.txt", entry.Path())
	s.Equal("notes.txt", entry.Basename())
	s.Equal("/home/user/docs", entry.Dirname())
}

func (s *DocumentTestSuite) TestURIHelpersNonFileScheme() {
	entry := &document.Entry{URI: "https://example.com/notes.txt"}

	s.Equal("", entry.Path())
	s.Equal("", entry.Basename())
	s.Equal("", entry.Dirname())
}

func (s *DocumentTestSuite) TestURIForPath() {
	s.Equal("file:///home/user/a%20b.txt", document.URIForPath("/home/user/a b.txt"))
}

func (s *DocumentTestSuite) TestSetPermissionsIsImmutable() {
	entry := &document.Entry{
		URI:         "file:///tmp/x",
		Permissions: map[string][]string{"org.example.A.B": {"read"}},
	}

	updated := entry.SetPermissions("org.example.C.D", []string{"read", "write"})

	s.Equal([]string{"read"}, entry.ListPermissions("org.example.A.B"))
	s.Empty(entry.ListPermissions("org.example.C.D"))
	s.Equal([]string{"read", "write"}, updated.ListPermissions("org.example.C.D"))
}

func (s *DocumentTestSuite) TestSetPermissionsEmptyRemovesGrant() {
	entry := &document.Entry{
		URI:         "file:///tmp/x",
		Permissions: map[string][]string{"org.example.A.B": {"read"}},
	}

	updated := entry.SetPermissions("org.example.A.B", nil)

	s.Empty(updated.ListPermissions("org.example.A.B"))
}

func TestDocumentTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}
