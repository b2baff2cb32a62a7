package sessions

import (
	"testing"

	"github.com/pairboard/pairboard/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_AddRemove(t *testing.T) {
	sm := NewSessionManager()
	assert.Equal(t, 0, sm.Count())

	s1 := sm.AddSession(nil)
	s2 := sm.AddSession(nil)
	require.NotNil(t, s1)
	require.NotNil(t, s2)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Equal(t, 2, sm.Count())

	assert.Same(t, s1, sm.GetSessionByID(s1.ID))
	assert.Nil(t, sm.GetSessionByID("no-such-session"))

	sm.RemoveSession(s1.ID)
	assert.Nil(t, sm.GetSessionByID(s1.ID))
	assert.Equal(t, 1, sm.Count())
}

func TestSessionManager_SessionsAreIndependent(t *testing.T) {
	sm := NewSessionManager()
	s1 := sm.AddSession(nil)
	s2 := sm.AddSession(nil)

	wine, ok := board.TokenByID("wine")
	require.True(t, ok)
	s1.Board.Place("cell-0", wine)

	assert.Len(t, s1.Board.Grid(), 1)
	assert.Empty(t, s2.Board.Grid(), "each session owns its own board")
}

func TestSession_DefaultBoard(t *testing.T) {
	sm := NewSessionManager()
	s := sm.AddSession(nil)

	assert.Equal(t, board.Layout{Rows: DefaultRows, Cols: DefaultCols}, s.Board.Layout())
	assert.Equal(t, 0, s.Board.HistoryLen())
}

func TestSession_WakeDoesNotBlock(t *testing.T) {
	sm := NewSessionManager()
	s := sm.AddSession(nil)

	// Repeated wakes without a draining loop must not block the caller.
	s.Wake()
	s.Wake()
	s.Wake()

	select {
	case <-s.Notify:
	default:
		t.Fatal("expected a pending notify signal")
	}
}
