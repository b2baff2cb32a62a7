package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pairboard/pairboard/pkg/log"
	"github.com/pairboard/pairboard/pkg/messages"
	"github.com/pairboard/pairboard/pkg/sessions"
)

// Server serves the widget protocol over WebSocket connections. Each
// connection gets its own session and board; a per-session loop drains the
// operation queue so board operations never interleave.
type Server struct {
	sessionManager *sessions.SessionManager
}

type NewServerOptions struct {
	SessionManager *sessions.SessionManager
}

// NewServer creates a new widget protocol server.
func NewServer(opts NewServerOptions) *Server {
	return &Server{
		sessionManager: opts.SessionManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades the request to a WebSocket connection and serves the
// widget protocol for its lifetime.
func (s *Server) HandleWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		session := s.sessionManager.AddSession(conn)
		log.Debug("New session %s from %s", session.ID, conn.RemoteAddr().String())
		go s.handleConnection(session)
	}
}

// handleConnection reads messages from the connection and enqueues them for
// the session loop. It owns the session lifecycle: when the read side ends,
// the loop is stopped and the session removed.
func (s *Server) handleConnection(session *sessions.Session) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		s.sessionManager.RemoveSession(session.ID)
		session.Conn.Close()
		log.Debug("Session %s closed", session.ID)
	}()

	go s.runSessionLoop(ctx, session)

	for {
		_, data, err := session.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("Error reading WebSocket message for session %s: %v", session.ID, err)
			}
			log.Trace("Connection closed for session %s", session.ID)
			return
		}

		msg := &messages.Message{}
		if err := json.Unmarshal(data, msg); err != nil {
			log.Error("Failed to deserialize message for session %s: %v", session.ID, err)
			continue
		}

		if err := session.OpQueue.Enqueue(msg); err != nil {
			log.Warn("Dropping message for session %s: %v", session.ID, err)
			continue
		}
		session.Wake()
	}
}

// runSessionLoop applies queued operations to the session's board and pushes
// a snapshot after each batch. All board mutation happens here, one
// operation at a time.
func (s *Server) runSessionLoop(ctx context.Context, session *sessions.Session) {
	if err := s.pushBoardUpdate(session); err != nil {
		log.Error("Failed to push initial board update for session %s: %v", session.ID, err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-session.Notify:
			pending, err := session.OpQueue.ReadAllMessages()
			if err != nil {
				log.Error("Failed to read operations for session %s: %v", session.ID, err)
				continue
			}
			for _, item := range pending {
				msg, ok := item.(*messages.Message)
				if !ok {
					log.Error("Failed to cast operation to messages.Message")
					continue
				}
				applyMessage(session.Board, msg)
			}
			if len(pending) == 0 {
				continue
			}
			if err := s.pushBoardUpdate(session); err != nil {
				log.Error("Failed to push board update for session %s: %v", session.ID, err)
				return
			}
		}
	}
}

// pushBoardUpdate sends the current board snapshot to the session's widget.
func (s *Server) pushBoardUpdate(session *sessions.Session) error {
	update := BoardUpdateFromBoard(session.Board)
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	msg := &messages.Message{
		Type:    messages.MessageTypeServerBoardUpdate,
		Payload: payload,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return session.Conn.WriteMessage(websocket.TextMessage, data)
}
