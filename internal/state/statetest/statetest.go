// Package statetest provides helper functions to create tests using the light cycle state.
package statetest

import (
	"fmt"
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/tronGo/internal/state"
)

// BuildGrid from a text layout, one string per row, all with the same length:
//
//   - '.': empty cell.
//   - '1', '2': trail of the first or second player.
//   - 'A', 'B': head of the first or second player, also marked as the player's trail.
//
// Heads not present in the layout are returned as {-1, -1}.
func BuildGrid(layout ...string) (grid *Grid, heads [NumPlayers]Pos) {
	if len(layout) == 0 {
		exceptions.Panicf("BuildGrid requires at least one row")
	}
	heads = [NumPlayers]Pos{{-1, -1}, {-1, -1}}
	grid = NewGrid(len(layout[0]), len(layout))
	for y, row := range layout {
		if len(row) != grid.Cols() {
			exceptions.Panicf("BuildGrid: row %d has %d columns, wanted %d", y, len(row), grid.Cols())
		}
		for x, ch := range row {
			pos := Pos{x, y}
			switch ch {
			case '.':
			case '1':
				grid.Set(pos, OwnedByFirst)
			case '2':
				grid.Set(pos, OwnedBySecond)
			case 'A':
				grid.Set(pos, OwnedByFirst)
				heads[PlayerFirst] = pos
			case 'B':
				grid.Set(pos, OwnedBySecond)
				heads[PlayerSecond] = pos
			default:
				exceptions.Panicf("BuildGrid: invalid character %q at %s", ch, pos)
			}
		}
	}
	return
}

// PrintGrid prints the grid to stdout, for debugging.
func PrintGrid(grid *Grid) {
	fmt.Print(grid)
}
