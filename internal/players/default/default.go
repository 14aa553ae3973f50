// Package _default registers the default players that can be included in any
// front-end for tronGo.
//
// Currently, it includes the "voronoi" player (territory scorer + greedy searcher) and the "random" player.
package _default

import (
	"fmt"
	"github.com/janpfeifer/tronGo/internal/ai/territory"
	"github.com/janpfeifer/tronGo/internal/parameters"
	"github.com/janpfeifer/tronGo/internal/players"
	"github.com/janpfeifer/tronGo/internal/searchers"
	"github.com/janpfeifer/tronGo/internal/searchers/greedy"
	"github.com/janpfeifer/tronGo/internal/searchers/random"
	"github.com/janpfeifer/tronGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	players.RegisterModule("voronoi", &Voronoi{})
	players.RegisterModule("random", &Random{})
}

// Voronoi implements players.Module for the territory based AI.
//
// Parameters:
//
//   - seed (int): seed for the random tie-breaking. Default is 0, which means a seed drawn from the clock.
//   - shuffle (bool): evaluate directions in random order, so ties are broken randomly. Default is true.
//     If false, ties go to the first of UP, DOWN, LEFT, RIGHT.
//   - openness (float): weight of the number of open neighbors of the destination. Default is 0.5.
//   - max_iterations (int): cap on the flood fill. Default is 0, meaning large enough for the board.
//   - randomness (float): if > 0, sample the direction from a softmax of the scores divided by this value.
type Voronoi struct{}

// Assert Voronoi implements Module.
var _ players.Module = (*Voronoi)(nil)

// NewPlayer implements players.Module.
func (v *Voronoi) NewPlayer(playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	shuffle, err := parameters.PopParamOr(params, "shuffle", true)
	if err != nil {
		return nil, err
	}
	openness, err := parameters.PopParamOr(params, "openness", territory.DefaultOpennessWeight)
	if err != nil {
		return nil, err
	}
	maxIterations, err := parameters.PopParamOr(params, "max_iterations", 0)
	if err != nil {
		return nil, err
	}
	if maxIterations < 0 {
		return nil, errors.Errorf("invalid max_iterations=%d, it must be >= 0", maxIterations)
	}
	randomness, err := parameters.PopParamOr(params, "randomness", 0.0)
	if err != nil {
		return nil, err
	}

	rng := searchers.NewRand(uint64(seed))
	scorer := territory.NewScorer().WithOpennessWeight(openness).WithMaxIterations(maxIterations)
	g := greedy.New(scorer)
	if shuffle {
		g.WithShuffle(rng)
	}
	searcher := searchers.NewRandomizedSearcher(g, randomness, rng)
	name := fmt.Sprintf("voronoi(%s)", g)
	if randomness > 0 {
		name = fmt.Sprintf("voronoi(%s, randomness=%g)", g, randomness)
	}
	klog.V(1).Infof("Created %s for the %s player", name, playerNum)
	return players.NewSearcherPlayer(name, searcher), nil
}

// Random implements players.Module for the simple random AI.
//
// Parameters:
//
//   - seed (int): seed for the random choices. Default is 0, which means a seed drawn from the clock.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (r *Random) NewPlayer(playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Created random AI for the %s player", playerNum)
	return players.NewSearcherPlayer("random", random.New(searchers.NewRand(uint64(seed)))), nil
}
