package random

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/tronGo/internal/searchers"
	. "github.com/janpfeifer/tronGo/internal/state"
	. "github.com/janpfeifer/tronGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRandomAvoidsDeadEnds(t *testing.T) {
	// Moving Left from A leads to a dead end at (0, 1), all others crash.
	grid, heads := BuildGrid(
		"111.",
		".A1.",
		"111.",
	)
	s := New(searchers.NewRand(1))
	action, score, scores := s.Search(grid, heads[PlayerFirst], PlayerFirst, Pos{3, 0})
	assert.Equal(t, Left, action, "only safe move, even if a dead end")
	assert.Equal(t, float32(0), score)
	assert.True(t, math32.IsInf(scores[Right], -1))

	grid, heads = BuildGrid(
		"1.1.",
		".A..",
		"111.",
	)
	for range 50 {
		action, _, _ = s.Search(grid, heads[PlayerFirst], PlayerFirst, Pos{3, 0})
		// Up and Left lead to dead ends, Right still has an exit.
		assert.Equal(t, Right, action)
	}
}

func TestRandomNoMoves(t *testing.T) {
	grid, heads := BuildGrid(
		"A1",
		"1.",
	)
	s := New(searchers.NewRand(1))
	action, score, _ := s.Search(grid, heads[PlayerFirst], PlayerFirst, Pos{1, 1})
	assert.Equal(t, searchers.FallbackDirection, action)
	assert.True(t, math32.IsInf(score, -1))
}

func TestRandomReproducible(t *testing.T) {
	grid := NewGrid(5, 5)
	me := Pos{2, 2}
	grid.Set(me, OwnedByFirst)
	s1, s2 := New(searchers.NewRand(3)), New(searchers.NewRand(3))
	for range 20 {
		a1, _, _ := s1.Search(grid, me, PlayerFirst, Pos{0, 0})
		a2, _, _ := s2.Search(grid, me, PlayerFirst, Pos{0, 0})
		assert.Equal(t, a1, a2)
	}
}
