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

// Package client provides the bus client for the document portal.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/retr0h/docport/internal/portal"
)

// Requester issues request/reply calls on the bus.
type Requester interface {
	RequestWithContext(
		ctx context.Context,
		subj string,
		data []byte,
	) (*nats.Msg, error)
}

// Ensure the NATS connection satisfies Requester.
var _ Requester = (*nats.Conn)(nil)

// Client calls the document portal's request subjects.
type Client struct {
	logger    *slog.Logger
	requester Requester
	// sender is the bus connection name the portal resolves for policy.
	sender string
}

// New creates a Client.
func New(
	logger *slog.Logger,
	requester Requester,
	sender string,
) *Client {
	return &Client{
		logger:    logger,
		requester: requester,
		sender:    sender,
	}
}

// call marshals req, performs the request, and unmarshals into resp.
func (c *Client) call(
	ctx context.Context,
	subject string,
	req any,
	resp any,
) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	msg, err := c.requester.RequestWithContext(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", subject, err)
	}

	if err := json.Unmarshal(msg.Data, resp); err != nil {
		return fmt.Errorf("malformed reply from %s: %w", subject, err)
	}

	return nil
}

// portalError converts a reply error into a Go error.
func portalError(errInfo *portal.ErrorInfo) error {
	if errInfo == nil {
		return nil
	}

	return fmt.Errorf("%s: %s", errInfo.Code, errInfo.Message)
}

// Add registers a document for an absolute host path and returns its id.
func (c *Client) Add(
	ctx context.Context,
	path string,
) (string, error) {
	var resp portal.AddResponse
	err := c.call(ctx, portal.SubjectAdd, portal.AddRequest{
		Sender: c.sender,
		Path:   path,
	}, &resp)
	if err != nil {
		return "", err
	}

	if err := portalError(resp.Error); err != nil {
		return "", err
	}

	return resp.ID, nil
}

// Grant grants permission tokens on a document to an app id.
func (c *Client) Grant(
	ctx context.Context,
	id string,
	appID string,
	permissions []string,
) error {
	var resp portal.StatusResponse
	err := c.call(ctx, portal.SubjectGrant, portal.GrantRequest{
		Sender:      c.sender,
		ID:          id,
		AppID:       appID,
		Permissions: permissions,
	}, &resp)
	if err != nil {
		return err
	}

	return portalError(resp.Error)
}

// Revoke revokes permission tokens on a document from an app id.
func (c *Client) Revoke(
	ctx context.Context,
	id string,
	appID string,
	permissions []string,
) error {
	var resp portal.StatusResponse
	err := c.call(ctx, portal.SubjectRevoke, portal.RevokeRequest{
		Sender:      c.sender,
		ID:          id,
		AppID:       appID,
		Permissions: permissions,
	}, &resp)
	if err != nil {
		return err
	}

	return portalError(resp.Error)
}

// Delete removes a document from the portal.
func (c *Client) Delete(
	ctx context.Context,
	id string,
) error {
	var resp portal.StatusResponse
	err := c.call(ctx, portal.SubjectDelete, portal.DeleteRequest{
		Sender: c.sender,
		ID:     id,
	}, &resp)
	if err != nil {
		return err
	}

	return portalError(resp.Error)
}

// Info returns a document's path and grants.
func (c *Client) Info(
	ctx context.Context,
	id string,
) (*portal.DocumentInfo, error) {
	var resp portal.InfoResponse
	err := c.call(ctx, portal.SubjectInfo, portal.InfoRequest{
		Sender: c.sender,
		ID:     id,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := portalError(resp.Error); err != nil {
		return nil, err
	}

	return resp.Document, nil
}

// List returns the document ids visible to the caller.
func (c *Client) List(
	ctx context.Context,
) ([]string, error) {
	var resp portal.ListResponse
	err := c.call(ctx, portal.SubjectList, portal.ListRequest{
		Sender: c.sender,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := portalError(resp.Error); err != nil {
		return nil, err
	}

	return resp.IDs, nil
}
