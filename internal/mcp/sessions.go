package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/bank-support-mcp/internal/logging"
)

// SessionManager tracks the live client sessions by id. Entries are added
// when a session registers with the MCP server and dropped when it goes away.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]server.ClientSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]server.ClientSession)}
}

func (m *SessionManager) Register(id string, session server.ClientSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = session
}

func (m *SessionManager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *SessionManager) Get(id string) (server.ClientSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Hooks keeps the manager in step with the MCP server's session lifecycle.
func (m *SessionManager) Hooks(log logging.Logger) *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddOnRegisterSession(func(ctx context.Context, session server.ClientSession) {
		m.Register(session.SessionID(), session)
		log.Debug("session registered", "session_id", session.SessionID())
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session server.ClientSession) {
		m.Unregister(session.SessionID())
		log.Debug("session unregistered", "session_id", session.SessionID())
	})
	return hooks
}
