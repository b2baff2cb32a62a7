package board

// Board is the grid/lock/history state machine for one session. The three
// stores only ever change together: every operation either commits a
// consistent update to grid, lock set, and history, or leaves all of them
// untouched. Operations have no error returns; calls that violate a
// precondition (locked cell, empty history, out-of-bounds cell) are silent
// no-ops.
//
// Board is not safe for concurrent use. Callers serialize operations, e.g.
// by routing them through a single session loop.
type Board struct {
	layout  Layout
	pending *Layout
	grid    map[string]Token
	locked  map[string]bool
	history []HistoryEntry
}

// New creates an empty board at the given dimensions (clamped to [1,10]).
func New(rows, cols int) *Board {
	return &Board{
		layout: NewLayout(rows, cols),
		grid:   make(map[string]Token),
		locked: make(map[string]bool),
	}
}

// Place puts token into cell and appends one history entry. Placing into a
// locked cell or outside the current layout is a no-op. The lock token locks
// its own cell immediately with no partner. Any other token pairs with the
// first occupied, unlocked cell holding the same token id, scanning cells in
// ascending linear index order; a pairing locks both cells.
func (b *Board) Place(cell string, token Token) {
	if !b.layout.Contains(cell) || b.locked[cell] {
		return
	}

	prev, hadPrev := b.grid[cell]
	b.grid[cell] = token

	entry := HistoryEntry{Kind: EntryAdd, Cell: cell, Token: token}
	if hadPrev {
		entry.Kind = EntryReplace
		entry.PrevToken = prev
	}

	if token.IsLock() {
		b.locked[cell] = true
	} else if partner, ok := b.findUnlockedMatch(cell, token.ID); ok {
		b.locked[cell] = true
		b.locked[partner] = true
		entry.Partner = partner
	}

	b.history = append(b.history, entry)
}

// Remove deletes the occupant of cell and appends one history entry.
// Removing from a locked, empty, or out-of-bounds cell is a no-op. Removing
// a non-lock token also unlocks the first locked cell holding the same token
// id, dissolving the pairing.
func (b *Board) Remove(cell string) {
	if !b.layout.Contains(cell) || b.locked[cell] {
		return
	}
	token, ok := b.grid[cell]
	if !ok {
		return
	}

	entry := HistoryEntry{
		Kind:      EntryRemove,
		Cell:      cell,
		Token:     token,
		WasLocked: b.locked[cell],
	}
	delete(b.grid, cell)

	if !token.IsLock() {
		if partner, ok := b.findLockedMatch(cell, token.ID); ok {
			delete(b.locked, partner)
			entry.Partner = partner
		}
	}

	b.history = append(b.history, entry)
}

// ToggleLock releases a locked cell, together with the first locked cell
// holding the same token id unless the occupant is the lock token. Cells
// that are not locked are left untouched. The transition is deliberately not
// recorded in the history log, so it cannot be undone.
func (b *Board) ToggleLock(cell string) {
	if !b.locked[cell] {
		return
	}
	token, ok := b.grid[cell]
	if !ok {
		return
	}

	delete(b.locked, cell)
	if token.IsLock() {
		return
	}
	if partner, ok := b.findLockedMatch(cell, token.ID); ok {
		delete(b.locked, partner)
	}
}

// Undo pops the most recent history entry and applies its inverse. Exactly
// one entry is consumed per call; an empty history is a no-op.
func (b *Board) Undo() {
	n := len(b.history)
	if n == 0 {
		return
	}
	entry := b.history[n-1]
	b.history = b.history[:n-1]

	switch entry.Kind {
	case EntryAdd, EntryReplace:
		if entry.Kind == EntryAdd {
			delete(b.grid, entry.Cell)
		} else {
			b.grid[entry.Cell] = entry.PrevToken
		}
		// The placement locked the cell if it paired or placed the lock token.
		if entry.Partner != "" || entry.Token.IsLock() {
			delete(b.locked, entry.Cell)
		}
		if entry.Partner != "" {
			delete(b.locked, entry.Partner)
		}
	case EntryRemove:
		b.grid[entry.Cell] = entry.Token
		if entry.WasLocked {
			b.locked[entry.Cell] = true
		}
		// Re-lock the partner the removal unlocked.
		if entry.Partner != "" {
			b.locked[entry.Partner] = true
		}
	}
}

// Reset clears the grid, lock set, and history log together. Dimensions are
// unchanged.
func (b *Board) Reset() {
	b.grid = make(map[string]Token)
	b.locked = make(map[string]bool)
	b.history = nil
}

// SetLayout requests new dimensions. With a non-empty grid the change is
// staged as pending and must be confirmed before it takes effect; an empty
// grid adopts the dimensions immediately. Out-of-range dimensions are
// clamped to [1,10].
func (b *Board) SetLayout(rows, cols int) {
	l := NewLayout(rows, cols)
	if l == b.layout {
		b.pending = nil
		return
	}
	if len(b.grid) > 0 {
		b.pending = &l
		return
	}
	b.applyLayout(l)
}

// ConfirmPendingLayout applies a staged layout change, clearing the grid,
// lock set, and history log together. Without a pending layout it is a
// no-op.
func (b *Board) ConfirmPendingLayout() {
	if b.pending == nil {
		return
	}
	b.applyLayout(*b.pending)
}

// CancelPendingLayout discards a staged layout change.
func (b *Board) CancelPendingLayout() {
	b.pending = nil
}

// applyLayout adopts l and recreates all three stores empty, so no stale
// cell key can outlive the dimensions it was derived from.
func (b *Board) applyLayout(l Layout) {
	b.layout = l
	b.pending = nil
	b.grid = make(map[string]Token)
	b.locked = make(map[string]bool)
	b.history = nil
}

// findUnlockedMatch scans cells in ascending linear index order for an
// occupied, unlocked cell other than cell that holds token id.
func (b *Board) findUnlockedMatch(cell, id string) (string, bool) {
	for i := 0; i < b.layout.CellCount(); i++ {
		key := CellKey(i)
		if key == cell || b.locked[key] {
			continue
		}
		if t, ok := b.grid[key]; ok && t.ID == id {
			return key, true
		}
	}
	return "", false
}

// findLockedMatch scans cells in ascending linear index order for a locked
// cell other than cell that holds token id.
func (b *Board) findLockedMatch(cell, id string) (string, bool) {
	for i := 0; i < b.layout.CellCount(); i++ {
		key := CellKey(i)
		if key == cell || !b.locked[key] {
			continue
		}
		if t, ok := b.grid[key]; ok && t.ID == id {
			return key, true
		}
	}
	return "", false
}

// Grid returns a copy of the occupied cells.
func (b *Board) Grid() map[string]Token {
	grid := make(map[string]Token, len(b.grid))
	for k, v := range b.grid {
		grid[k] = v
	}
	return grid
}

// Locks returns a copy of the locked cell set.
func (b *Board) Locks() map[string]bool {
	locks := make(map[string]bool, len(b.locked))
	for k, v := range b.locked {
		if v {
			locks[k] = true
		}
	}
	return locks
}

// HistoryLen returns the number of undoable entries.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// Layout returns the active dimensions.
func (b *Board) Layout() Layout {
	return b.layout
}

// PendingLayout returns the staged dimensions awaiting confirmation, or nil.
func (b *Board) PendingLayout() *Layout {
	if b.pending == nil {
		return nil
	}
	l := *b.pending
	return &l
}
