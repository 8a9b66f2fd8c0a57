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

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/retr0h/docport/internal/document"
	"github.com/retr0h/docport/internal/document/store"
	"github.com/retr0h/docport/internal/permission"
)

// Handler implements the portal's document operations. Every operation
// first resolves the requester's identity; policy decisions are made on
// the recovered app id, never on requester-supplied claims.
type Handler struct {
	logger   *slog.Logger
	store    store.Store
	resolver Resolver
}

// NewHandler creates a Handler.
func NewHandler(
	logger *slog.Logger,
	s store.Store,
	resolver Resolver,
) *Handler {
	return &Handler{
		logger:   logger,
		store:    s,
		resolver: resolver,
	}
}

// identify resolves the requester or builds the failure reply.
func (h *Handler) identify(
	ctx context.Context,
	sender string,
) (string, *ErrorInfo) {
	appID, err := h.resolver.Resolve(ctx, sender)
	if err != nil {
		h.logger.Warn(
			"identity lookup failed",
			slog.String("sender", sender),
			slog.String("error", err.Error()),
		)

		return "", &ErrorInfo{
			Code:    ErrCodeLookupFailed,
			Message: "requester identity could not be established",
		}
	}

	return appID, nil
}

// fetch loads a document or builds the failure reply.
func (h *Handler) fetch(
	id string,
) (*document.Entry, *ErrorInfo) {
	entry, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ErrorInfo{
				Code:    ErrCodeNotFound,
				Message: "no such document: " + id,
			}
		}

		h.logger.Error(
			"document fetch failed",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)

		return nil, &ErrorInfo{
			Code:    ErrCodeNotFound,
			Message: "document unavailable: " + id,
		}
	}

	return entry, nil
}

// Add registers a document for an absolute host path. Only unsandboxed
// requesters may add documents. Re-adding an already registered path
// returns the existing id.
func (h *Handler) Add(
	ctx context.Context,
	req AddRequest,
) AddResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return AddResponse{Error: errInfo}
	}

	if appID != "" {
		return AddResponse{Error: &ErrorInfo{
			Code:    ErrCodeNotAllowed,
			Message: "sandboxed requesters cannot register documents",
		}}
	}

	if !filepath.IsAbs(req.Path) {
		return AddResponse{Error: &ErrorInfo{
			Code:    ErrCodeInvalidArgument,
			Message: "path must be absolute: " + req.Path,
		}}
	}

	path := filepath.Clean(req.Path)

	id, _, err := h.store.LookupByPath(path)
	if err != nil {
		return AddResponse{Error: h.storeError("path lookup", err)}
	}
	if id != "" {
		return AddResponse{ID: id}
	}

	id, err = h.store.NewID()
	if err != nil {
		return AddResponse{Error: h.storeError("id allocation", err)}
	}

	entry := &document.Entry{
		URI:         document.URIForPath(path),
		Permissions: map[string][]string{},
		Created:     time.Now(),
	}
	if err := h.store.Put(id, entry); err != nil {
		return AddResponse{Error: h.storeError("document put", err)}
	}

	h.logger.Info(
		"document registered",
		slog.String("id", id),
		slog.String("path", path),
	)

	return AddResponse{ID: id}
}

// Grant grants permission tokens on a document to an app id. The requester
// must hold grant-permissions plus every permission being granted.
func (h *Handler) Grant(
	ctx context.Context,
	req GrantRequest,
) StatusResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	if !document.IsValidAppName(req.AppID) {
		return StatusResponse{Error: &ErrorInfo{
			Code:    ErrCodeInvalidArgument,
			Message: "invalid app name: " + req.AppID,
		}}
	}

	entry, errInfo := h.fetch(req.ID)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	granted := permission.Parse(h.logger, req.Permissions)
	if !permission.Has(h.logger, entry, appID, permission.GrantPermissions|granted) {
		return StatusResponse{Error: &ErrorInfo{
			Code:    ErrCodeNotAllowed,
			Message: "requester cannot grant these permissions",
		}}
	}

	existing := permission.Parse(h.logger, entry.ListPermissions(req.AppID))
	updated := entry.SetPermissions(req.AppID, permission.Unparse(existing|granted))

	if err := h.store.Put(req.ID, updated); err != nil {
		return StatusResponse{Error: h.storeError("document put", err)}
	}

	h.logger.Info(
		"permissions granted",
		slog.String("id", req.ID),
		slog.String("app_id", req.AppID),
		slog.Any("permissions", permission.Unparse(granted)),
	)

	return StatusResponse{}
}

// Revoke revokes permission tokens on a document from an app id. The
// requester must hold grant-permissions, or be revoking its own grants.
func (h *Handler) Revoke(
	ctx context.Context,
	req RevokeRequest,
) StatusResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	if !document.IsValidAppName(req.AppID) {
		return StatusResponse{Error: &ErrorInfo{
			Code:    ErrCodeInvalidArgument,
			Message: "invalid app name: " + req.AppID,
		}}
	}

	entry, errInfo := h.fetch(req.ID)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	if appID != req.AppID &&
		!permission.Has(h.logger, entry, appID, permission.GrantPermissions) {
		return StatusResponse{Error: &ErrorInfo{
			Code:    ErrCodeNotAllowed,
			Message: "requester cannot revoke these permissions",
		}}
	}

	revoked := permission.Parse(h.logger, req.Permissions)
	existing := permission.Parse(h.logger, entry.ListPermissions(req.AppID))
	updated := entry.SetPermissions(req.AppID, permission.Unparse(existing&^revoked))

	if err := h.store.Put(req.ID, updated); err != nil {
		return StatusResponse{Error: h.storeError("document put", err)}
	}

	h.logger.Info(
		"permissions revoked",
		slog.String("id", req.ID),
		slog.String("app_id", req.AppID),
		slog.Any("permissions", permission.Unparse(revoked)),
	)

	return StatusResponse{}
}

// Delete removes a document from the portal. The requester must hold the
// delete permission on it.
func (h *Handler) Delete(
	ctx context.Context,
	req DeleteRequest,
) StatusResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	entry, errInfo := h.fetch(req.ID)
	if errInfo != nil {
		return StatusResponse{Error: errInfo}
	}

	if !permission.Has(h.logger, entry, appID, permission.Delete) {
		return StatusResponse{Error: &ErrorInfo{
			Code:    ErrCodeNotAllowed,
			Message: "requester cannot delete this document",
		}}
	}

	if err := h.store.Delete(req.ID); err != nil {
		return StatusResponse{Error: h.storeError("document delete", err)}
	}

	h.logger.Info(
		"document deleted",
		slog.String("id", req.ID),
		slog.String("path", entry.Path()),
	)

	return StatusResponse{}
}

// Info returns a document's path and grants. The requester must hold the
// read permission on it.
func (h *Handler) Info(
	ctx context.Context,
	req InfoRequest,
) InfoResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return InfoResponse{Error: errInfo}
	}

	entry, errInfo := h.fetch(req.ID)
	if errInfo != nil {
		return InfoResponse{Error: errInfo}
	}

	if !permission.Has(h.logger, entry, appID, permission.Read) {
		return InfoResponse{Error: &ErrorInfo{
			Code:    ErrCodeNotAllowed,
			Message: "requester cannot read this document",
		}}
	}

	return InfoResponse{Document: infoFromEntry(req.ID, entry)}
}

// List returns the document ids visible to the requester: every id for
// unsandboxed requesters, readable ids for sandboxed ones.
func (h *Handler) List(
	ctx context.Context,
	req ListRequest,
) ListResponse {
	appID, errInfo := h.identify(ctx, req.Sender)
	if errInfo != nil {
		return ListResponse{Error: errInfo}
	}

	ids, err := h.store.List()
	if err != nil {
		return ListResponse{Error: h.storeError("document list", err)}
	}

	if appID == "" {
		return ListResponse{IDs: ids}
	}

	visible := make([]string, 0, len(ids))
	for _, id := range ids {
		entry, err := h.store.Get(id)
		if err != nil {
			continue
		}
		if permission.Has(h.logger, entry, appID, permission.Read) {
			visible = append(visible, id)
		}
	}

	return ListResponse{IDs: visible}
}

// storeError logs a storage failure and builds its reply.
func (h *Handler) storeError(
	op string,
	err error,
) *ErrorInfo {
	h.logger.Error(
		"storage operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)

	return &ErrorInfo{
		Code:    ErrCodeNotFound,
		Message: op + " failed",
	}
}
