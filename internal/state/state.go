// Package state holds the light cycle board: the occupancy Grid, positions and directions, and the Round
// driver that applies both players' moves simultaneously.
package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"strings"
)

// Cell is the content of one position of the Grid.
type Cell uint8

const (
	Empty Cell = iota
	OwnedByFirst
	OwnedBySecond
)

var cellLetters = [...]string{".", "1", "2"}

// String returns a one letter representation of the cell.
func (c Cell) String() string {
	if int(c) >= len(cellLetters) {
		return "?"
	}
	return cellLetters[c]
}

// Owner returns the player whose trail occupies the cell, or PlayerInvalid if the cell is empty.
func (c Cell) Owner() PlayerNum {
	switch c {
	case OwnedByFirst:
		return PlayerFirst
	case OwnedBySecond:
		return PlayerSecond
	}
	return PlayerInvalid
}

const (
	// NumPlayers is always 2.
	NumPlayers = 2

	// NumDirections a light cycle can move to.
	NumDirections = 4

	// DefaultCols and DefaultRows of the board: 600 pixels split in 20 pixels cells.
	DefaultCols = 30
	DefaultRows = 30
)

// PlayerNum is either 0 or 1, for the player starting on the left side or the one starting on the right side.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents no player: it is used as the winner of a draw.
	PlayerInvalid
)

var playerNames = [...]string{"First", "Second", "Invalid"}

// String returns "First", "Second" or "Invalid".
func (p PlayerNum) String() string {
	if int(p) >= len(playerNames) {
		return fmt.Sprintf("PlayerNum(%d)", p)
	}
	return playerNames[p]
}

// Cell returns the cell used to mark the player's trail.
func (p PlayerNum) Cell() Cell {
	switch p {
	case PlayerFirst:
		return OwnedByFirst
	case PlayerSecond:
		return OwnedBySecond
	}
	exceptions.Panicf("invalid player %s has no trail cell", p)
	return Empty
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// Pos packages x, y position.
type Pos [2]int

// X coordinate of the position: the column.
func (pos Pos) X() int {
	return pos[0]
}

// Y coordinate of the position: the row, growing downwards.
func (pos Pos) Y() int {
	return pos[1]
}

// Neighbor returns the position one step in the given direction. It may be outside the grid.
func (pos Pos) Neighbor(dir Direction) Pos {
	dx, dy := dir.Delta()
	return Pos{pos[0] + dx, pos[1] + dy}
}

// Distance returns the manhattan distance of two positions.
func (pos Pos) Distance(pos2 Pos) int {
	return absInt(pos[0]-pos2[0]) + absInt(pos[1]-pos2[1])
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction of a move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions enumerates all directions in their canonical order.
var Directions = [NumDirections]Direction{Up, Down, Left, Right}

var (
	directionNames  = [NumDirections]string{"UP", "DOWN", "LEFT", "RIGHT"}
	directionDeltas = [NumDirections][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// String returns "UP", "DOWN", "LEFT" or "RIGHT".
func (dir Direction) String() string {
	if int(dir) >= NumDirections {
		return fmt.Sprintf("Direction(%d)", dir)
	}
	return directionNames[dir]
}

// Delta returns the unit step of the direction. Y grows downwards, so Up is (0, -1).
func (dir Direction) Delta() (dx, dy int) {
	if int(dir) >= NumDirections {
		exceptions.Panicf("invalid direction %d", dir)
	}
	d := directionDeltas[dir]
	return d[0], d[1]
}

// Opposite returns the reverse direction.
func (dir Direction) Opposite() Direction {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// ParseDirection from its name, case-insensitive.
func ParseDirection(name string) (Direction, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for ii, dirName := range directionNames {
		if dirName == upper {
			return Direction(ii), nil
		}
	}
	return Up, errors.Errorf("unknown direction %q, valid values are %s", name, strings.Join(directionNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (dir Direction) MarshalText() ([]byte, error) {
	if int(dir) >= NumDirections {
		return nil, errors.Errorf("invalid direction %d", dir)
	}
	return []byte(dir.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dir *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*dir = parsed
	return nil
}
