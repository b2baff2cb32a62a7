package board

// EntryKind tags a history entry variant.
type EntryKind int

const (
	// EntryAdd records a token placed into an empty cell.
	EntryAdd EntryKind = iota
	// EntryRemove records a token deleted from a cell.
	EntryRemove
	// EntryReplace records a token placed over a previous occupant.
	EntryReplace
)

func (k EntryKind) String() string {
	switch k {
	case EntryAdd:
		return "add"
	case EntryRemove:
		return "remove"
	case EntryReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// HistoryEntry records one invertible mutation of the grid and lock set.
// Replaying entries in reverse through their inverses reconstructs the exact
// state present when each entry was recorded.
type HistoryEntry struct {
	Kind EntryKind
	Cell string
	// Token is the token placed (Add/Replace) or removed (Remove).
	Token Token
	// PrevToken is the occupant replaced by Token (Replace only).
	PrevToken Token
	// Partner is the second cell locked or unlocked as a side effect of this
	// action, if any.
	Partner string
	// WasLocked records whether Cell was locked before a Remove, so undo can
	// restore its lock flag.
	WasLocked bool
}
