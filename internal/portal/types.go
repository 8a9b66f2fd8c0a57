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

// Package portal implements the document portal: a privileged broker that
// registers host documents and mediates per-app access to them.
package portal

import (
	"context"
	"time"

	"github.com/retr0h/docport/internal/document"
	"github.com/retr0h/docport/internal/identity"
)

// Resolver resolves a bus connection name to the requester's app id. The
// empty string identifies an unsandboxed host requester.
type Resolver interface {
	Resolve(
		ctx context.Context,
		connectionName string,
	) (string, error)
}

// Ensure the identity cache satisfies Resolver.
var _ Resolver = (*identity.Cache)(nil)

// Error codes returned in reply envelopes.
const (
	// ErrCodeNotFound means the document id does not exist.
	ErrCodeNotFound = "not-found"
	// ErrCodeInvalidArgument means a malformed path, id, app name, or token.
	ErrCodeInvalidArgument = "invalid-argument"
	// ErrCodeNotAllowed means the requester lacks the needed permission.
	ErrCodeNotAllowed = "not-allowed"
	// ErrCodeLookupFailed means the requester's identity could not be
	// established.
	ErrCodeLookupFailed = "identity-lookup-failed"
)

// ErrorInfo describes a failed operation in a reply envelope.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddRequest registers a document for an absolute host path.
type AddRequest struct {
	// Sender is the requester's bus connection name.
	Sender string `json:"sender"`
	// Path is the absolute host path to register.
	Path string `json:"path"`
}

// AddResponse carries the registered document id.
type AddResponse struct {
	ID    string     `json:"id,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// GrantRequest grants permission tokens on a document to an app id.
type GrantRequest struct {
	Sender      string   `json:"sender"`
	ID          string   `json:"id"`
	AppID       string   `json:"app_id"`
	Permissions []string `json:"permissions"`
}

// RevokeRequest revokes permission tokens on a document from an app id.
type RevokeRequest struct {
	Sender      string   `json:"sender"`
	ID          string   `json:"id"`
	AppID       string   `json:"app_id"`
	Permissions []string `json:"permissions"`
}

// DeleteRequest removes a document from the portal.
type DeleteRequest struct {
	Sender string `json:"sender"`
	ID     string `json:"id"`
}

// InfoRequest asks for a document's path and grants.
type InfoRequest struct {
	Sender string `json:"sender"`
	ID     string `json:"id"`
}

// ListRequest asks for the document ids visible to the requester.
type ListRequest struct {
	Sender string `json:"sender"`
}

// StatusResponse acknowledges a mutation with no payload.
type StatusResponse struct {
	Error *ErrorInfo `json:"error,omitempty"`
}

// DocumentInfo is the externally visible view of a document entry.
type DocumentInfo struct {
	ID      string              `json:"id"`
	Path    string              `json:"path"`
	Grants  map[string][]string `json:"grants"`
	Created string              `json:"created"`
}

// InfoResponse carries a single document's view.
type InfoResponse struct {
	Document *DocumentInfo `json:"document,omitempty"`
	Error    *ErrorInfo    `json:"error,omitempty"`
}

// ListResponse carries the visible document ids.
type ListResponse struct {
	IDs   []string   `json:"ids"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// infoFromEntry builds the external view of a stored entry.
func infoFromEntry(
	id string,
	entry *document.Entry,
) *DocumentInfo {
	grants := make(map[string][]string, len(entry.Permissions))
	for appID, tokens := range entry.Permissions {
		grants[appID] = tokens
	}

	return &DocumentInfo{
		ID:      id,
		Path:    entry.Path(),
		Grants:  grants,
		Created: entry.Created.UTC().Format(time.RFC3339),
	}
}
