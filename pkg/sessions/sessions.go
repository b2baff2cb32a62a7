package sessions

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pairboard/pairboard/pkg/board"
	"github.com/pairboard/pairboard/pkg/queue"
)

const (
	// DefaultRows is the starting row count for a new session's board.
	DefaultRows = 2
	// DefaultCols is the starting column count for a new session's board.
	DefaultCols = 4
	// OpQueueSize represents the maximum number of queued operations per
	// session.
	OpQueueSize = 256
)

// Session represents one connected widget and the board it owns. The board
// is only ever touched by the session loop draining OpQueue, which keeps
// every operation serialized.
type Session struct {
	ID      string
	Board   *board.Board
	Conn    *websocket.Conn
	OpQueue queue.Queue

	// Notify wakes the session loop after an enqueue.
	Notify chan struct{}
}

// Wake signals the session loop that operations are pending. The channel
// has capacity 1; a signal already in flight covers any number of enqueues.
func (s *Session) Wake() {
	select {
	case s.Notify <- struct{}{}:
	default:
	}
}

// SessionManager manages connected sessions
type SessionManager struct {
	sessions     map[string]*Session
	sessionsLock sync.RWMutex
}

// NewSessionManager creates a new SessionManager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// AddSession creates a session with a fresh board for a new connection and
// returns it.
func (sm *SessionManager) AddSession(conn *websocket.Conn) *Session {
	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	session := &Session{
		ID:      uuid.NewString(),
		Board:   board.New(DefaultRows, DefaultCols),
		Conn:    conn,
		OpQueue: queue.NewInMemoryQueue(OpQueueSize),
		Notify:  make(chan struct{}, 1),
	}
	sm.sessions[session.ID] = session
	return session
}

// RemoveSession removes a session from the manager.
func (sm *SessionManager) RemoveSession(sessionID string) {
	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	delete(sm.sessions, sessionID)
}

// GetSessionByID retrieves a session by its ID
func (sm *SessionManager) GetSessionByID(sessionID string) *Session {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return sm.sessions[sessionID]
}

// Count returns the number of connected sessions.
func (sm *SessionManager) Count() int {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return len(sm.sessions)
}
