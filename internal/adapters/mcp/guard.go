package mcp

import (
	"sync"

	"contentmgr/internal/application"
)

// Guard serializes access to a session. The MCP server may dispatch tool
// calls concurrently while a session expects a single caller.
type Guard struct {
	mu      sync.Mutex
	session *application.Session
}

// NewGuard wraps session
func NewGuard(session *application.Session) *Guard {
	return &Guard{session: session}
}

// With runs fn while holding the session lock
func (g *Guard) With(fn func(*application.Session) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.session)
}
