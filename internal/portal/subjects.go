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

package portal

// Request subjects served by the portal. Each is a request/reply endpoint
// carrying JSON envelopes.
const (
	// SubjectAdd registers a document for a host path.
	SubjectAdd = "portal.documents.add"
	// SubjectGrant grants permissions on a document to an app id.
	SubjectGrant = "portal.documents.grant"
	// SubjectRevoke revokes permissions on a document from an app id.
	SubjectRevoke = "portal.documents.revoke"
	// SubjectDelete removes a document from the portal.
	SubjectDelete = "portal.documents.delete"
	// SubjectInfo returns a document's path and grants.
	SubjectInfo = "portal.documents.info"
	// SubjectList returns the document ids visible to the requester.
	SubjectList = "portal.documents.list"
)

// queueGroup load-balances portal replicas on the request subjects.
const queueGroup = "portal"
