// Package greedy implements a one-ply searcher: it scores the cell reached by each legal direction with an
// ai.MoveScorer and takes the best.
//
// With the territory.Scorer this is the "Voronoi bot".
package greedy

import (
	"github.com/janpfeifer/tronGo/internal/ai"
	"github.com/janpfeifer/tronGo/internal/searchers"
	. "github.com/janpfeifer/tronGo/internal/state"
	"k8s.io/klog/v2"
	"math/rand/v2"
)

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	scorer  ai.MoveScorer
	rng     *rand.Rand
	shuffle bool
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New returns a greedy searcher using the given scorer.
//
// By default, directions are evaluated in the fixed order of state.Directions (Up, Down, Left, Right), and
// ties go to the first evaluated. See WithShuffle to randomize the order.
func New(scorer ai.MoveScorer) *Searcher {
	return &Searcher{scorer: scorer}
}

// WithShuffle makes the searcher evaluate directions in a random order drawn from rng, so ties are broken
// randomly. Pass a rng with a fixed seed to make it reproducible. If rng is nil, shuffling is disabled.
func (s *Searcher) WithShuffle(rng *rand.Rand) *Searcher {
	s.rng = rng
	s.shuffle = rng != nil
	return s
}

// Search implements searchers.Searcher.
//
// A direction is legal if it leads to an empty in-bounds cell. Among the legal ones it picks the one with the
// strictly greatest score, so ties are won by the first evaluated. If none is legal it returns
// searchers.FallbackDirection with score ai.IllegalMoveScore.
func (s *Searcher) Search(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (action Direction, score float32, actionsScores []float32) {
	order := Directions
	if s.shuffle {
		s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	action, score = searchers.FallbackDirection, ai.IllegalMoveScore
	actionsScores = searchers.NewActionsScores()
	found := false
	for _, dir := range order {
		next, legal := ai.IsLegal(grid, me, dir)
		if !legal {
			continue
		}
		dirScore := s.scorer.ScoreMove(grid, next, opp)
		actionsScores[dir] = dirScore
		if !found || dirScore > score {
			action, score, found = dir, dirScore, true
		}
	}
	if klog.V(3).Enabled() {
		klog.Infof("greedy(%s) player %s at %s: order=%v, scores=%v -> %s", s.scorer, myNum, me, order, actionsScores, action)
	}
	return
}

// String returns a description of the searcher.
func (s *Searcher) String() string {
	if s.shuffle {
		return "greedy+shuffle/" + s.scorer.String()
	}
	return "greedy/" + s.scorer.String()
}
