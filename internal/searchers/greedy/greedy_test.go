package greedy

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/tronGo/internal/ai"
	"github.com/janpfeifer/tronGo/internal/ai/territory"
	"github.com/janpfeifer/tronGo/internal/searchers"
	. "github.com/janpfeifer/tronGo/internal/state"
	. "github.com/janpfeifer/tronGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// dummyScorer returns 0 for all moves.
type dummyScorer struct{}

func (s *dummyScorer) ScoreMove(grid *Grid, next, opp Pos) float32 { return 0 }
func (s *dummyScorer) String() string                               { return "dummyScorer" }

var _ ai.MoveScorer = &dummyScorer{}

func TestSearchPrefersTerritory(t *testing.T) {
	grid := NewGrid(10, 10)
	me, opp := Pos{2, 5}, Pos{7, 5}
	grid.Set(me, OwnedByFirst)
	grid.Set(opp, OwnedBySecond)

	s := New(territory.NewScorer())
	action, score, scores := s.Search(grid, me, PlayerFirst, opp)
	assert.Equal(t, Right, action)
	assert.Equal(t, float32(60.5), score)
	assert.Equal(t, []float32{55.5, 54.5, 49.5, 60.5}, scores)

	// Same position seen by the second player on the mirrored board.
	mirror := grid.Mirror()
	action, score, _ = s.Search(mirror, mirror.MirrorPos(me), PlayerSecond, mirror.MirrorPos(opp))
	assert.Equal(t, Left, action)
	assert.Equal(t, float32(60.5), score)
}

func TestSearchNoLegalMove(t *testing.T) {
	grid := NewGrid(10, 10)
	me := Pos{0, 0}
	grid.Set(me, OwnedByFirst)
	grid.Set(Pos{1, 0}, OwnedBySecond)
	grid.Set(Pos{0, 1}, OwnedBySecond)

	s := New(territory.NewScorer())
	action, score, scores := s.Search(grid, me, PlayerFirst, Pos{7, 5})
	assert.Equal(t, searchers.FallbackDirection, action)
	assert.Equal(t, Up, action)
	assert.True(t, math32.IsInf(score, -1))
	for _, s := range scores {
		assert.True(t, math32.IsInf(s, -1))
	}
}

func TestSearchAvoidsEnclosure(t *testing.T) {
	grid, heads := BuildGrid(
		"1111......",
		"1..1......",
		"1..A.....B",
		"1..1......",
		"1..1......",
		"1111......",
	)
	s := New(territory.NewScorer())
	action, _, scores := s.Search(grid, heads[PlayerFirst], PlayerFirst, heads[PlayerSecond])
	assert.Equal(t, Right, action)
	assert.True(t, math32.IsInf(scores[Up], -1))
	assert.True(t, math32.IsInf(scores[Down], -1))
	assert.Equal(t, float32(8+0.5*3), scores[Left])
}

func TestSearchDoomedPocket(t *testing.T) {
	grid, heads := BuildGrid(
		"1111......",
		"1.A1...B..",
		"1111......",
	)
	before := grid.String()
	s := New(territory.NewScorer())
	action, score, _ := s.Search(grid, heads[PlayerFirst], PlayerFirst, heads[PlayerSecond])
	assert.Equal(t, Left, action)
	assert.Equal(t, float32(1), score)
	assert.Equal(t, before, grid.String(), "Search must not change the grid")
}

func TestSearchTieBreak(t *testing.T) {
	grid, heads := BuildGrid(
		".1.",
		".A.",
		"...",
	)
	s := New(&dummyScorer{})
	action, _, _ := s.Search(grid, heads[PlayerFirst], PlayerFirst, Pos{-1, -1})
	// Up is blocked, so the first legal direction in the canonical order wins.
	assert.Equal(t, Down, action)
}

func TestSearchShuffleIsReproducible(t *testing.T) {
	grid := NewGrid(9, 9)
	me := Pos{4, 4}
	grid.Set(me, OwnedByFirst)
	s1 := New(&dummyScorer{}).WithShuffle(searchers.NewRand(42))
	s2 := New(&dummyScorer{}).WithShuffle(searchers.NewRand(42))
	seen := make(map[Direction]bool)
	for range 50 {
		a1, _, _ := s1.Search(grid, me, PlayerFirst, Pos{0, 0})
		a2, _, _ := s2.Search(grid, me, PlayerFirst, Pos{0, 0})
		require.Equal(t, a1, a2)
		seen[a1] = true
	}
	// With all moves tied, shuffling should pick more than one direction.
	assert.Greater(t, len(seen), 1)
	assert.Equal(t, "greedy+shuffle/dummyScorer", s1.String())
}

func TestSearchLegality(t *testing.T) {
	rng := searchers.NewRand(7)
	s := New(territory.NewScorer()).WithShuffle(searchers.NewRand(11))
	for range 200 {
		grid := NewGrid(8, 8)
		for range 30 {
			pos := Pos{rng.IntN(8), rng.IntN(8)}
			if grid.IsEmpty(pos) {
				grid.Set(pos, OwnedBySecond)
			}
		}
		me := Pos{rng.IntN(8), rng.IntN(8)}
		opp := Pos{rng.IntN(8), rng.IntN(8)}
		if grid.IsEmpty(me) {
			grid.Set(me, OwnedByFirst)
		}
		action, _, _ := s.Search(grid, me, PlayerFirst, opp)
		if len(ai.LegalMoves(grid, me)) == 0 {
			assert.Equal(t, searchers.FallbackDirection, action)
			continue
		}
		assert.Truef(t, grid.IsEmpty(me.Neighbor(action)), "illegal move %s from %s:\n%s", action, me, grid)
	}
}

func TestSearchDeterministic(t *testing.T) {
	grid, heads := BuildGrid(
		"..........",
		"..A....B..",
		"...111....",
		"..........",
	)
	s := New(territory.NewScorer())
	want, wantScore, _ := s.Search(grid, heads[PlayerFirst], PlayerFirst, heads[PlayerSecond])
	for range 10 {
		got, gotScore, _ := s.Search(grid, heads[PlayerFirst], PlayerFirst, heads[PlayerSecond])
		require.Equal(t, want, got)
		require.Equal(t, wantScore, gotScore)
	}
}
