package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustToken(t *testing.T, id string) Token {
	t.Helper()
	token, ok := TokenByID(id)
	require.True(t, ok, "token %q not in catalog", id)
	return token
}

func TestBoard_PlacePairsMatchingTokens(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(2, 4)

	b.Place("cell-0", wine)
	assert.Equal(t, map[string]Token{"cell-0": wine}, b.Grid())
	assert.Empty(t, b.Locks())
	assert.Equal(t, 1, b.HistoryLen())

	b.Place("cell-1", wine)
	assert.Equal(t, map[string]bool{"cell-0": true, "cell-1": true}, b.Locks())
	assert.Equal(t, 2, b.HistoryLen())

	b.Undo()
	assert.Equal(t, map[string]Token{"cell-0": wine}, b.Grid())
	assert.Empty(t, b.Locks())
	assert.Equal(t, 1, b.HistoryLen())
}

func TestBoard_PlaceScansAscendingCellIndex(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(3, 4)

	b.Place("cell-10", wine)
	b.Place("cell-2", wine)
	require.Equal(t, map[string]bool{"cell-2": true, "cell-10": true}, b.Locks())
	b.ToggleLock("cell-2")
	require.Empty(t, b.Locks())

	// Two unlocked candidates now; cell-5 pairs with cell-2, the first
	// match in ascending cell index order, not with cell-10.
	b.Place("cell-5", wine)
	assert.Equal(t, map[string]bool{"cell-2": true, "cell-5": true}, b.Locks())
}

func TestBoard_LockTokenLocksOwnCell(t *testing.T) {
	lock := mustToken(t, LockTokenID)
	b := New(2, 4)

	b.Place("cell-0", lock)
	assert.Equal(t, map[string]bool{"cell-0": true}, b.Locks())
	assert.Equal(t, 1, b.HistoryLen())

	// A locked cell rejects removal until explicitly unlocked.
	b.Remove("cell-0")
	assert.Equal(t, map[string]Token{"cell-0": lock}, b.Grid())
	assert.Equal(t, 1, b.HistoryLen())

	// Two lock tokens do not pair with each other.
	b.Place("cell-3", lock)
	assert.Equal(t, map[string]bool{"cell-0": true, "cell-3": true}, b.Locks())

	b.ToggleLock("cell-0")
	assert.Equal(t, map[string]bool{"cell-3": true}, b.Locks())
}

func TestBoard_LockedCellIsImmutable(t *testing.T) {
	wine := mustToken(t, "wine")
	bread := mustToken(t, "bread")
	b := New(2, 4)

	b.Place("cell-0", wine)
	b.Place("cell-1", wine)
	require.Equal(t, map[string]bool{"cell-0": true, "cell-1": true}, b.Locks())

	b.Place("cell-0", bread)
	b.Remove("cell-1")
	assert.Equal(t, map[string]Token{"cell-0": wine, "cell-1": wine}, b.Grid())
	assert.Equal(t, 2, b.HistoryLen(), "no-ops must not append history entries")

	b.ToggleLock("cell-0")
	b.Place("cell-0", bread)
	assert.Equal(t, bread, b.Grid()["cell-0"])
}

func TestBoard_ToggleLockReleasesPartner(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(2, 4)

	b.Place("cell-0", wine)
	b.Place("cell-1", wine)
	require.Len(t, b.Locks(), 2)

	historyLen := b.HistoryLen()
	b.ToggleLock("cell-0")
	assert.Empty(t, b.Locks())
	assert.Equal(t, historyLen, b.HistoryLen(), "toggle-lock is not recorded in history")

	// Toggling an unlocked cell does nothing.
	b.ToggleLock("cell-1")
	assert.Empty(t, b.Locks())
}

func TestBoard_RemoveDissolvesPairing(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(2, 4)

	b.Place("cell-0", wine)
	b.Place("cell-1", wine)
	b.Place("cell-2", wine)
	require.Equal(t, map[string]bool{"cell-0": true, "cell-1": true}, b.Locks())

	// Removing the unpaired third copy unlocks the first locked match.
	b.Remove("cell-2")
	assert.Equal(t, map[string]bool{"cell-1": true}, b.Locks())
	assert.Equal(t, map[string]Token{"cell-0": wine, "cell-1": wine}, b.Grid())
	assert.Equal(t, 4, b.HistoryLen())
}

func TestBoard_PlaceOutsideLayoutIsNoOp(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(2, 4)

	b.Place("cell-8", wine)
	b.Place("cell--1", wine)
	b.Place("bogus", wine)
	assert.Empty(t, b.Grid())
	assert.Equal(t, 0, b.HistoryLen())
}

func TestBoard_RemoveEmptyCellIsNoOp(t *testing.T) {
	b := New(2, 4)

	b.Remove("cell-0")
	b.Remove("cell-8")
	assert.Equal(t, 0, b.HistoryLen())
}

func TestBoard_ResetClearsStoresKeepsDimensions(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(3, 3)

	b.Place("cell-0", wine)
	b.Place("cell-1", wine)
	b.Reset()

	assert.Empty(t, b.Grid())
	assert.Empty(t, b.Locks())
	assert.Equal(t, 0, b.HistoryLen())
	assert.Equal(t, Layout{Rows: 3, Cols: 3}, b.Layout())
}

func TestBoard_SnapshotsAreCopies(t *testing.T) {
	wine := mustToken(t, "wine")
	b := New(2, 4)
	b.Place("cell-0", wine)

	grid := b.Grid()
	grid["cell-1"] = wine
	assert.NotContains(t, b.Grid(), "cell-1")

	b.Place("cell-1", wine)
	locks := b.Locks()
	delete(locks, "cell-0")
	assert.Contains(t, b.Locks(), "cell-0")
}

func TestBoard_LockedCellsArePaired(t *testing.T) {
	// Every locked cell holds the lock token or shares its token id with
	// another locked cell.
	wine := mustToken(t, "wine")
	bread := mustToken(t, "bread")
	lock := mustToken(t, LockTokenID)
	b := New(3, 4)

	b.Place("cell-0", wine)
	b.Place("cell-1", bread)
	b.Place("cell-2", wine)
	b.Place("cell-3", lock)
	b.Place("cell-4", bread)
	b.Remove("cell-5")
	b.Undo()

	grid := b.Grid()
	locks := b.Locks()
	for cell := range locks {
		token := grid[cell]
		if token.IsLock() {
			continue
		}
		paired := false
		for other := range locks {
			if other != cell && grid[other].ID == token.ID {
				paired = true
				break
			}
		}
		assert.True(t, paired, "locked cell %s has no locked partner", cell)
	}
}
