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

// Package permission provides the document permission flag vocabulary and
// the per-requester permission query.
package permission

import (
	"log/slog"
)

// Flags is a bitmask of per-document permissions granted to an app id.
type Flags uint32

const (
	// Read allows reading the document contents.
	Read Flags = 1 << iota
	// Write allows writing the document contents.
	Write
	// GrantPermissions allows granting permissions to other app ids.
	GrantPermissions
	// Delete allows removing the document from the portal.
	Delete
)

// All is the full permission set.
const All = Read | Write | GrantPermissions | Delete

// Token strings used on the wire and in the permission store.
const (
	TokenRead             = "read"
	TokenWrite            = "write"
	TokenGrantPermissions = "grant-permissions"
	TokenDelete           = "delete"
)

// AllTokens lists every permission token, in flag order.
var AllTokens = []string{TokenRead, TokenWrite, TokenGrantPermissions, TokenDelete}

// Unparse converts a flag bitmask into its ordered token representation.
func Unparse(
	flags Flags,
) []string {
	tokens := []string{}

	if flags&Read != 0 {
		tokens = append(tokens, TokenRead)
	}
	if flags&Write != 0 {
		tokens = append(tokens, TokenWrite)
	}
	if flags&GrantPermissions != 0 {
		tokens = append(tokens, TokenGrantPermissions)
	}
	if flags&Delete != 0 {
		tokens = append(tokens, TokenDelete)
	}

	return tokens
}

// Parse converts permission tokens into a flag bitmask. Unrecognized tokens
// are logged and contribute no bits.
func Parse(
	logger *slog.Logger,
	tokens []string,
) Flags {
	var flags Flags

	for _, token := range tokens {
		switch token {
		case TokenRead:
			flags |= Read
		case TokenWrite:
			flags |= Write
		case TokenGrantPermissions:
			flags |= GrantPermissions
		case TokenDelete:
			flags |= Delete
		default:
			logger.Warn(
				"no such permission",
				slog.String("token", token),
			)
		}
	}

	return flags
}
