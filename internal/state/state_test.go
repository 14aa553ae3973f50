package state_test

import (
	"encoding/json"
	"fmt"
	. "github.com/janpfeifer/tronGo/internal/state"
	. "github.com/janpfeifer/tronGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var _ = fmt.Printf

func TestDirections(t *testing.T) {
	origin := Pos{5, 5}
	want := map[Direction]Pos{Up: {5, 4}, Down: {5, 6}, Left: {4, 5}, Right: {6, 5}}
	for _, dir := range Directions {
		assert.Equalf(t, want[dir], origin.Neighbor(dir), "Direction %s", dir)
		assert.Equal(t, origin, origin.Neighbor(dir).Neighbor(dir.Opposite()))
	}
	assert.Equal(t, "UP", Up.String())
	assert.Equal(t, "RIGHT", Right.String())
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection(" left ")
	require.NoError(t, err)
	assert.Equal(t, Left, dir)

	_, err = ParseDirection("north")
	require.Error(t, err)

	var moves []Direction
	require.NoError(t, json.Unmarshal([]byte(`["down", "RIGHT"]`), &moves))
	assert.Equal(t, []Direction{Down, Right}, moves)
	encoded, err := json.Marshal(moves)
	require.NoError(t, err)
	assert.Equal(t, `["DOWN","RIGHT"]`, string(encoded))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Pos{3, 3}.Distance(Pos{3, 3}))
	assert.Equal(t, 7, Pos{0, 0}.Distance(Pos{3, 4}))
	assert.Equal(t, 7, Pos{3, 4}.Distance(Pos{0, 0}))
}

func TestGrid(t *testing.T) {
	g := NewGrid(10, 8)
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, 8, g.Rows())
	assert.Equal(t, 80, g.NumCells())
	assert.Equal(t, 80, g.CountEmpty())

	assert.True(t, g.InBounds(Pos{0, 0}))
	assert.True(t, g.InBounds(Pos{9, 7}))
	assert.False(t, g.InBounds(Pos{10, 0}))
	assert.False(t, g.InBounds(Pos{0, 8}))
	assert.False(t, g.InBounds(Pos{-1, 3}))

	g.Set(Pos{2, 3}, OwnedBySecond)
	assert.Equal(t, OwnedBySecond, g.At(Pos{2, 3}))
	assert.False(t, g.IsEmpty(Pos{2, 3}))
	assert.False(t, g.IsEmpty(Pos{-1, 0}), "out of bounds is never empty")
	assert.Equal(t, 79, g.CountEmpty())

	// Trails are permanent.
	require.Panics(t, func() { g.Set(Pos{2, 3}, Empty) })
	require.Panics(t, func() { g.Set(Pos{10, 3}, OwnedByFirst) })
}

func TestGridClone(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(Pos{1, 1}, OwnedByFirst)
	clone := g.Clone()
	clone.Set(Pos{2, 2}, OwnedBySecond)
	assert.True(t, g.IsEmpty(Pos{2, 2}), "changes to the clone must not leak to the original")
	assert.Equal(t, OwnedByFirst, clone.At(Pos{1, 1}))
}

func TestGridMirror(t *testing.T) {
	g, heads := BuildGrid(
		"A1....",
		"......",
		"...2.B",
	)
	m := g.Mirror()
	want, wantHeads := BuildGrid(
		"....2B",
		"......",
		"A.1...",
	)
	assert.Equal(t, want.String(), m.String())
	assert.Equal(t, wantHeads[PlayerSecond], g.MirrorPos(heads[PlayerFirst]))
	assert.Equal(t, wantHeads[PlayerFirst], g.MirrorPos(heads[PlayerSecond]))
}

func TestBuildGrid(t *testing.T) {
	g, heads := BuildGrid(
		"..1.",
		".A2B",
	)
	PrintGrid(g)
	assert.Equal(t, Pos{1, 1}, heads[PlayerFirst])
	assert.Equal(t, Pos{3, 1}, heads[PlayerSecond])
	assert.Equal(t, OwnedByFirst, g.At(Pos{2, 0}))
	assert.Equal(t, OwnedBySecond, g.At(Pos{2, 1}))
	assert.Equal(t, 4, g.CountEmpty())
	assert.Equal(t, "..1.\n.122\n", g.String())
}
