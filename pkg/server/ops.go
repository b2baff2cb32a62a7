package server

import (
	"encoding/json"

	"github.com/pairboard/pairboard/pkg/board"
	"github.com/pairboard/pairboard/pkg/log"
	"github.com/pairboard/pairboard/pkg/messages"
)

// applyMessage routes one widget message to the corresponding board
// operation. Malformed payloads and unknown token ids are logged and
// dropped. Precondition violations on the board itself (locked cell, empty
// history) are silent no-ops and never surface to the widget.
func applyMessage(b *board.Board, msg *messages.Message) {
	switch msg.Type {
	case messages.MessageTypeClientPlace:
		place := &messages.ClientPlace{}
		if err := json.Unmarshal(msg.Payload, place); err != nil {
			log.Error("Failed to unmarshal place message: %v", err)
			return
		}
		token, ok := board.TokenByID(place.TokenID)
		if !ok {
			log.Warn("Ignoring place with unknown token id %q", place.TokenID)
			return
		}
		b.Place(place.Cell, token)
	case messages.MessageTypeClientRemove:
		remove := &messages.ClientRemove{}
		if err := json.Unmarshal(msg.Payload, remove); err != nil {
			log.Error("Failed to unmarshal remove message: %v", err)
			return
		}
		b.Remove(remove.Cell)
	case messages.MessageTypeClientToggleLock:
		toggle := &messages.ClientToggleLock{}
		if err := json.Unmarshal(msg.Payload, toggle); err != nil {
			log.Error("Failed to unmarshal toggle-lock message: %v", err)
			return
		}
		b.ToggleLock(toggle.Cell)
	case messages.MessageTypeClientUndo:
		b.Undo()
	case messages.MessageTypeClientReset:
		b.Reset()
	case messages.MessageTypeClientSetLayout:
		setLayout := &messages.ClientSetLayout{}
		if err := json.Unmarshal(msg.Payload, setLayout); err != nil {
			log.Error("Failed to unmarshal set-layout message: %v", err)
			return
		}
		b.SetLayout(setLayout.Rows, setLayout.Cols)
	case messages.MessageTypeClientConfirmLayout:
		b.ConfirmPendingLayout()
	case messages.MessageTypeClientCancelLayout:
		b.CancelPendingLayout()
	default:
		log.Error("Unhandled message type: %s", msg.Type)
	}
}
