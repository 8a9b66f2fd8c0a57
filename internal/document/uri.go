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

package document

import (
	"net/url"
	"path/filepath"
)

// Path derives the filesystem path from the entry's URI. Non-file URIs and
// unparsable URIs yield an empty string.
func (e *Entry) Path() string {
	u, err := url.Parse(e.URI)
	if err != nil {
		return ""
	}

	if u.Scheme != "" && u.Scheme != "file" {
		return ""
	}

	return u.Path
}

// Basename derives the final path element from the entry's URI.
func (e *Entry) Basename() string {
	path := e.Path()
	if path == "" {
		return ""
	}

	return filepath.Base(path)
}

// Dirname derives the containing directory from the entry's URI.
func (e *Entry) Dirname() string {
	path := e.Path()
	if path == "" {
		return ""
	}

	return filepath.Dir(path)
}

// URIForPath formats an absolute filesystem path as a file URI.
func URIForPath(
	path string,
) string {
	u := url.URL{Scheme: "file", Path: path}

	return u.String()
}
