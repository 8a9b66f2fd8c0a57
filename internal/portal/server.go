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
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Server exposes the portal's document operations as request/reply
// endpoints on the bus.
type Server struct {
	logger  *slog.Logger
	conn    *nats.Conn
	handler *Handler

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	subs   []*nats.Subscription
}

// NewServer creates a Server over an established NATS connection.
func NewServer(
	logger *slog.Logger,
	conn *nats.Conn,
	handler *Handler,
) *Server {
	return &Server{
		logger:  logger,
		conn:    conn,
		handler: handler,
	}
}

// Start subscribes the portal's request subjects without blocking. Call
// Stop to shut down.
func (s *Server) Start() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting document portal")

	endpoints := []struct {
		subject string
		handle  func(ctx context.Context, data []byte) any
	}{
		{SubjectAdd, s.handleAdd},
		{SubjectGrant, s.handleGrant},
		{SubjectRevoke, s.handleRevoke},
		{SubjectDelete, s.handleDelete},
		{SubjectInfo, s.handleInfo},
		{SubjectList, s.handleList},
	}

	for _, ep := range endpoints {
		handle := ep.handle
		subject := ep.subject
		sub, err := s.conn.QueueSubscribe(ep.subject, queueGroup, func(m *nats.Msg) {
			s.wg.Add(1)
			defer s.wg.Done()

			requestID := uuid.NewString()
			s.logger.Debug(
				"portal request",
				slog.String("request_id", requestID),
				slog.String("subject", subject),
			)

			reply := handle(s.ctx, m.Data)
			s.respond(m, reply)
		})
		if err != nil {
			s.logger.Error(
				"failed to subscribe",
				slog.String("subject", ep.subject),
				slog.String("error", err.Error()),
			)
			continue
		}

		s.subs = append(s.subs, sub)
	}

	s.logger.Info("document portal started successfully")
}

// Stop gracefully shuts down the portal, waiting for in-flight requests
// to finish or the context deadline to expire.
func (s *Server) Stop(
	ctx context.Context,
) {
	s.logger.Info("document portal shutting down")

	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("document portal stopped gracefully")
	case <-ctx.Done():
		s.logger.Warn("document portal shutdown timed out")
	}
}

// respond marshals and publishes a reply, logging failures.
func (s *Server) respond(
	m *nats.Msg,
	reply any,
) {
	data, err := json.Marshal(reply)
	if err != nil {
		s.logger.Error(
			"failed to marshal reply",
			slog.String("subject", m.Subject),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := m.Respond(data); err != nil {
		s.logger.Error(
			"failed to publish reply",
			slog.String("subject", m.Subject),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Server) handleAdd(
	ctx context.Context,
	data []byte,
) any {
	var req AddRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return AddResponse{Error: malformedRequest(err)}
	}

	return s.handler.Add(ctx, req)
}

func (s *Server) handleGrant(
	ctx context.Context,
	data []byte,
) any {
	var req GrantRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return StatusResponse{Error: malformedRequest(err)}
	}

	return s.handler.Grant(ctx, req)
}

func (s *Server) handleRevoke(
	ctx context.Context,
	data []byte,
) any {
	var req RevokeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return StatusResponse{Error: malformedRequest(err)}
	}

	return s.handler.Revoke(ctx, req)
}

func (s *Server) handleDelete(
	ctx context.Context,
	data []byte,
) any {
	var req DeleteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return StatusResponse{Error: malformedRequest(err)}
	}

	return s.handler.Delete(ctx, req)
}

func (s *Server) handleInfo(
	ctx context.Context,
	data []byte,
) any {
	var req InfoRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return InfoResponse{Error: malformedRequest(err)}
	}

	return s.handler.Info(ctx, req)
}

func (s *Server) handleList(
	ctx context.Context,
	data []byte,
) any {
	var req ListRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ListResponse{Error: malformedRequest(err)}
	}

	return s.handler.List(ctx, req)
}

func malformedRequest(err error) *ErrorInfo {
	return &ErrorInfo{
		Code:    ErrCodeInvalidArgument,
		Message: "malformed request: " + err.Error(),
	}
}
