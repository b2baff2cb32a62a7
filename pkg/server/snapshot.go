package server

import (
	"sort"

	"github.com/pairboard/pairboard/pkg/board"
	"github.com/pairboard/pairboard/pkg/messages"
)

// BoardUpdateFromBoard builds the wire snapshot for a board. Locked cells
// are listed in ascending cell index order so snapshots are stable across
// pushes.
func BoardUpdateFromBoard(b *board.Board) *messages.ServerBoardUpdate {
	grid := make(map[string]string)
	for cell, token := range b.Grid() {
		grid[cell] = token.ID
	}

	lockSet := b.Locks()
	locks := make([]string, 0, len(lockSet))
	for cell := range lockSet {
		locks = append(locks, cell)
	}
	sort.Slice(locks, func(i, j int) bool {
		return board.CellIndex(locks[i]) < board.CellIndex(locks[j])
	})

	return &messages.ServerBoardUpdate{
		Layout:        b.Layout(),
		PendingLayout: b.PendingLayout(),
		Grid:          grid,
		Locks:         locks,
		HistoryLen:    b.HistoryLen(),
	}
}
