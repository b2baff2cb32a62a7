package board

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinDimension is the smallest allowed row or column count.
	MinDimension = 1
	// MaxDimension is the largest allowed row or column count.
	MaxDimension = 10
)

// Layout holds the grid dimensions.
type Layout struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// NewLayout builds a layout with both dimensions clamped to
// [MinDimension, MaxDimension]. Out-of-range input is coerced, not rejected.
func NewLayout(rows, cols int) Layout {
	return Layout{
		Rows: clampDimension(rows),
		Cols: clampDimension(cols),
	}
}

func clampDimension(d int) int {
	if d < MinDimension {
		return MinDimension
	}
	if d > MaxDimension {
		return MaxDimension
	}
	return d
}

// CellCount returns the number of cells on the layout.
func (l Layout) CellCount() int {
	return l.Rows * l.Cols
}

// Contains reports whether cell addresses a position on this layout.
func (l Layout) Contains(cell string) bool {
	i := CellIndex(cell)
	return i >= 0 && i < l.CellCount()
}

// CellKey returns the stable key for the cell at linear index i.
func CellKey(i int) string {
	return fmt.Sprintf("cell-%d", i)
}

// CellIndex parses a cell key back to its linear index, or -1 if the key is
// malformed.
func CellIndex(cell string) int {
	s, ok := strings.CutPrefix(cell, "cell-")
	if !ok {
		return -1
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return -1
	}
	return i
}

// Presets returns the layout presets offered by the widget. Dimensions
// remain free-form within the allowed bounds; these are shortcuts.
func Presets() []Layout {
	return []Layout{
		{Rows: 2, Cols: 4},
		{Rows: 3, Cols: 4},
		{Rows: 4, Cols: 4},
		{Rows: 4, Cols: 5},
		{Rows: 5, Cols: 6},
	}
}
