// Package searchers defines the Searcher interface, used by players to pick the direction to move, and
// a few generic helpers shared by its implementations.
package searchers

import (
	"github.com/janpfeifer/tronGo/internal/ai"
	. "github.com/janpfeifer/tronGo/internal/state"
	"math/rand/v2"
	"time"
)

// FallbackDirection is returned when no move is legal: the player is doomed and the game loop will
// register the crash.
const FallbackDirection = Up

// Searcher is the interface that any of the search algorithms must adhere to be valid.
type Searcher interface {
	// Search returns the direction to take for the player myNum at me, with the opponent at opp.
	// It must never mutate grid, and it must always return a direction, FallbackDirection if there is no
	// legal move.
	//
	// It also returns the score of the chosen direction and optionally the scores for each direction,
	// indexed by Direction. Illegal directions are scored ai.IllegalMoveScore.
	Search(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (action Direction, score float32, actionsScores []float32)
}

// NewActionsScores returns a slice of scores indexed by Direction, all set to ai.IllegalMoveScore.
func NewActionsScores() []float32 {
	scores := make([]float32, NumDirections)
	for ii := range scores {
		scores[ii] = ai.IllegalMoveScore
	}
	return scores
}

// NewRand returns a random number generator for the given seed. A seed of 0 picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
