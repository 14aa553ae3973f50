// Package random implements the simple bot: it moves uniformly at random among the directions that don't
// crash immediately, preferring those that still have an exit afterwards.
package random

import (
	"github.com/janpfeifer/tronGo/internal/ai"
	"github.com/janpfeifer/tronGo/internal/ai/territory"
	"github.com/janpfeifer/tronGo/internal/searchers"
	. "github.com/janpfeifer/tronGo/internal/state"
	"math/rand/v2"
)

// Searcher implements searchers.Searcher.
type Searcher struct {
	rng *rand.Rand
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New creates a random searcher drawing from rng.
func New(rng *rand.Rand) *Searcher {
	return &Searcher{rng: rng}
}

// Search implements searchers.Searcher. The score of each legal direction is the number of exits from the
// destination cell.
func (s *Searcher) Search(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (action Direction, score float32, actionsScores []float32) {
	actionsScores = searchers.NewActionsScores()
	var safe, notDumb []Direction
	for _, dir := range Directions {
		next, legal := ai.IsLegal(grid, me, dir)
		if !legal {
			continue
		}
		exits := territory.OpenNeighbors(grid, next)
		actionsScores[dir] = float32(exits)
		safe = append(safe, dir)
		if exits > 0 {
			notDumb = append(notDumb, dir)
		}
	}
	candidates := notDumb
	if len(candidates) == 0 {
		candidates = safe
	}
	if len(candidates) == 0 {
		return searchers.FallbackDirection, ai.IllegalMoveScore, actionsScores
	}
	action = candidates[s.rng.IntN(len(candidates))]
	return action, actionsScores[action], actionsScores
}

// String returns the name of the searcher.
func (s *Searcher) String() string {
	return "random"
}
