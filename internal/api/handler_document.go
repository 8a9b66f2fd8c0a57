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

package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/docport/internal/document/store"
)

// DocumentItem is the admin view of a stored document.
type DocumentItem struct {
	ID     string              `json:"id"`
	Path   string              `json:"path"`
	Grants map[string][]string `json:"grants"`
}

// DocumentListResponse carries the full document inventory.
type DocumentListResponse struct {
	Documents []DocumentItem `json:"documents"`
}

// listDocuments returns the full document inventory.
func (s *Server) listDocuments(
	ctx echo.Context,
) error {
	ids, err := s.store.List()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "document list failed",
		})
	}

	items := make([]DocumentItem, 0, len(ids))
	for _, id := range ids {
		entry, err := s.store.Get(id)
		if err != nil {
			continue
		}

		items = append(items, DocumentItem{
			ID:     id,
			Path:   entry.Path(),
			Grants: entry.Permissions,
		})
	}

	return ctx.JSON(http.StatusOK, DocumentListResponse{Documents: items})
}

// getDocument returns a single document by id.
func (s *Server) getDocument(
	ctx echo.Context,
) error {
	id := ctx.Param("id")

	entry, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "no such document: " + id,
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "document fetch failed",
		})
	}

	return ctx.JSON(http.StatusOK, DocumentItem{
		ID:     id,
		Path:   entry.Path(),
		Grants: entry.Permissions,
	})
}

// deleteDocument removes a document by id. Missing documents are not an
// error; deletion is idempotent.
func (s *Server) deleteDocument(
	ctx echo.Context,
) error {
	id := ctx.Param("id")

	if err := s.store.Delete(id); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "document delete failed",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
