package mcp

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

const (
	SSEPath      = "/sse"
	MessagesPath = "/messages"

	unknownSessionBody = "Unknown session ID"
)

// SSEHandler serves the event-stream transport. GET /sse opens a session
// stream; POST /messages?sessionId=<id> submits one command to that session.
func (s *Server) SSEHandler(opts ...server.SSEOption) http.Handler {
	opts = append([]server.SSEOption{
		server.WithSSEEndpoint(SSEPath),
		server.WithMessageEndpoint(MessagesPath),
	}, opts...)
	sse := server.NewSSEServer(s.MCP, opts...)

	mux := http.NewServeMux()
	mux.Handle("GET "+SSEPath, s.logConnections(sse.SSEHandler()))
	mux.Handle("POST "+MessagesPath, s.requireSession(sse.MessageHandler()))
	return mux
}

// NewHTTPServer serves SSEHandler on addr. Open event streams only end when
// their request context does, so every request context derives from a base
// context that Shutdown cancels.
func (s *Server) NewHTTPServer(addr string, opts ...server.SSEOption) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	httpServer := &http.Server{
		Addr:        addr,
		Handler:     s.SSEHandler(opts...),
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	httpServer.RegisterOnShutdown(cancel)
	return httpServer
}

func (s *Server) logConnections(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Info("New SSE connection established", "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
		s.log.Debug("SSE connection closed", "remote", r.RemoteAddr)
	})
}

// requireSession rejects commands for sessions that were never opened or
// whose stream has already closed.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if _, ok := s.Sessions.Get(sessionID); !ok {
			s.log.Info("rejected command for unknown session", "session_id", sessionID)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, unknownSessionBody)
			return
		}
		next.ServeHTTP(w, r)
	})
}
