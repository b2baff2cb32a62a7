package messages

import (
	"encoding/json"

	"github.com/pairboard/pairboard/pkg/board"
)

// Message types
const (
	MessageTypeClientPlace         = "place"
	MessageTypeClientRemove        = "remove"
	MessageTypeClientToggleLock    = "toggle-lock"
	MessageTypeClientUndo          = "undo"
	MessageTypeClientReset         = "reset"
	MessageTypeClientSetLayout     = "set-layout"
	MessageTypeClientConfirmLayout = "confirm-layout"
	MessageTypeClientCancelLayout  = "cancel-layout"
	MessageTypeServerBoardUpdate   = "board-update"
)

// Message represents a generic widget protocol message for
// serialization/deserialization.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClientPlace requests placing a catalog token into a cell. Drag-release and
// click-to-place both resolve to this message.
type ClientPlace struct {
	Cell    string `json:"cell"`
	TokenID string `json:"tokenID"`
}

// ClientRemove requests deleting the occupant of a cell.
type ClientRemove struct {
	Cell string `json:"cell"`
}

// ClientToggleLock requests releasing a locked cell.
type ClientToggleLock struct {
	Cell string `json:"cell"`
}

// ClientSetLayout requests new grid dimensions.
type ClientSetLayout struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// ServerBoardUpdate carries a full board snapshot for rendering. The server
// sends one after the connection is established and after every client
// operation.
type ServerBoardUpdate struct {
	Layout        board.Layout      `json:"layout"`
	PendingLayout *board.Layout     `json:"pendingLayout,omitempty"`
	Grid          map[string]string `json:"grid"`
	Locks         []string          `json:"locks"`
	HistoryLen    int               `json:"historyLen"`
}
