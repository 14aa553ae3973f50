package state

import (
	"github.com/gomlx/exceptions"
	"strings"
)

// Grid is the occupancy board, with cols × rows cells.
//
// The zero value is not usable, create it with NewGrid. Grids handed to players are snapshots (see Clone),
// and should be treated as read-only.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		exceptions.Panicf("invalid grid dimensions %dx%d", cols, rows)
	}
	return &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

// Cols is the number of columns (width) of the grid.
func (g *Grid) Cols() int { return g.cols }

// Rows is the number of rows (height) of the grid.
func (g *Grid) Rows() int { return g.rows }

// NumCells in the grid.
func (g *Grid) NumCells() int { return len(g.cells) }

// InBounds returns whether pos is inside the grid.
func (g *Grid) InBounds(pos Pos) bool {
	return pos[0] >= 0 && pos[0] < g.cols && pos[1] >= 0 && pos[1] < g.rows
}

// Index of the position in a flat slice of cells: valid only for in-bound positions.
func (g *Grid) Index(pos Pos) int {
	return pos[1]*g.cols + pos[0]
}

// At returns the cell at pos. Out-of-bound positions are reported as Empty, use IsEmpty to check for
// free positions.
func (g *Grid) At(pos Pos) Cell {
	if !g.InBounds(pos) {
		return Empty
	}
	return g.cells[g.Index(pos)]
}

// IsEmpty returns whether pos is inside the grid and not occupied by any trail.
func (g *Grid) IsEmpty(pos Pos) bool {
	return g.InBounds(pos) && g.cells[g.Index(pos)] == Empty
}

// Set the cell at pos. Trails are permanent: it panics if pos is out of bounds or if the cell is
// being reverted to Empty.
func (g *Grid) Set(pos Pos, cell Cell) {
	if !g.InBounds(pos) {
		exceptions.Panicf("Grid.Set(%s): position out of %dx%d grid", pos, g.cols, g.rows)
	}
	idx := g.Index(pos)
	if cell == Empty && g.cells[idx] != Empty {
		exceptions.Panicf("Grid.Set(%s): trails can't be erased", pos)
	}
	g.cells[idx] = cell
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{cols: g.cols, rows: g.rows, cells: make([]Cell, len(g.cells))}
	copy(clone.cells, g.cells)
	return clone
}

// CountEmpty returns the number of free cells.
func (g *Grid) CountEmpty() (count int) {
	for _, cell := range g.cells {
		if cell == Empty {
			count++
		}
	}
	return
}

// Mirror returns a copy of the grid reflected about its vertical center line, with the players'
// trails swapped. Use MirrorPos to map positions.
func (g *Grid) Mirror() *Grid {
	mirror := NewGrid(g.cols, g.rows)
	for y := range g.rows {
		for x := range g.cols {
			cell := g.cells[g.Index(Pos{x, y})]
			if owner := cell.Owner(); owner != PlayerInvalid {
				cell = owner.Opponent().Cell()
			}
			mirror.cells[mirror.Index(g.MirrorPos(Pos{x, y}))] = cell
		}
	}
	return mirror
}

// MirrorPos reflects pos about the vertical center line of the grid.
func (g *Grid) MirrorPos(pos Pos) Pos {
	return Pos{g.cols - 1 - pos[0], pos[1]}
}

// String returns one line per row, using Cell.String for each cell.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.rows {
		for x := range g.cols {
			sb.WriteString(g.cells[g.Index(Pos{x, y})].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
