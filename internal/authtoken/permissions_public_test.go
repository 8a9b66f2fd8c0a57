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

package authtoken_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/docport/internal/authtoken"
)

type PermissionsPublicTestSuite struct {
	suite.Suite
}

func (s *PermissionsPublicTestSuite) TestResolvePermissions() {
	tests := []struct {
		name              string
		roles             []string
		directPermissions []string
		customRoles       map[string][]string
		expectPerms       []string
		expectMissing     []string
	}{
		{
			name:          "admin role gets all permissions",
			roles:         []string{"admin"},
			expectPerms:   authtoken.AllPermissions,
			expectMissing: nil,
		},
		{
			name:  "write role gets document write but not cache",
			roles: []string{"write"},
			expectPerms: []string{
				authtoken.PermDocumentRead,
				authtoken.PermDocumentWrite,
				authtoken.PermHealthRead,
			},
			expectMissing: []string{
				authtoken.PermCacheRead,
			},
		},
		{
			name:  "read role gets read-only permissions",
			roles: []string{"read"},
			expectPerms: []string{
				authtoken.PermDocumentRead,
				authtoken.PermCacheRead,
				authtoken.PermHealthRead,
			},
			expectMissing: []string{
				authtoken.PermDocumentWrite,
			},
		},
		{
			name:          "unknown role gets no permissions",
			roles:         []string{"unknown"},
			expectPerms:   nil,
			expectMissing: authtoken.AllPermissions,
		},
		{
			name:          "empty roles gets no permissions",
			roles:         []string{},
			expectPerms:   nil,
			expectMissing: authtoken.AllPermissions,
		},
		{
			name:              "direct permissions override roles",
			roles:             []string{"admin"},
			directPermissions: []string{authtoken.PermDocumentRead},
			expectPerms:       []string{authtoken.PermDocumentRead},
			expectMissing: []string{
				authtoken.PermDocumentWrite,
				authtoken.PermCacheRead,
				authtoken.PermHealthRead,
			},
		},
		{
			name:  "custom role overrides default",
			roles: []string{"ops"},
			customRoles: map[string][]string{
				"ops": {authtoken.PermCacheRead, authtoken.PermHealthRead},
			},
			expectPerms: []string{
				authtoken.PermCacheRead,
				authtoken.PermHealthRead,
			},
			expectMissing: []string{
				authtoken.PermDocumentRead,
				authtoken.PermDocumentWrite,
			},
		},
		{
			name:  "custom role shadows built-in role",
			roles: []string{"read"},
			customRoles: map[string][]string{
				"read": {authtoken.PermHealthRead},
			},
			expectPerms: []string{authtoken.PermHealthRead},
			expectMissing: []string{
				authtoken.PermDocumentRead,
				authtoken.PermCacheRead,
			},
		},
		{
			name:  "multiple roles merge permissions",
			roles: []string{"read", "write"},
			expectPerms: []string{
				authtoken.PermDocumentRead,
				authtoken.PermDocumentWrite,
				authtoken.PermCacheRead,
				authtoken.PermHealthRead,
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resolved := authtoken.ResolvePermissions(
				tt.roles,
				tt.directPermissions,
				tt.customRoles,
			)

			for _, p := range tt.expectPerms {
				s.True(resolved[p], "expected permission %s to be present", p)
			}
			for _, p := range tt.expectMissing {
				s.False(resolved[p], "expected permission %s to be absent", p)
			}
		})
	}
}

func (s *PermissionsPublicTestSuite) TestHasPermission() {
	resolved := authtoken.ResolvePermissions([]string{"read"}, nil, nil)

	s.True(authtoken.HasPermission(resolved, authtoken.PermDocumentRead))
	s.False(authtoken.HasPermission(resolved, authtoken.PermDocumentWrite))
}

func TestPermissionsPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionsPublicTestSuite))
}
