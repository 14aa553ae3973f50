package searchers

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/tronGo/internal/state"
	"k8s.io/klog/v2"
	"math"
	"math/rand/v2"
	"slices"
)

// NewRandomizedSearcher adds randomness to the direction taken by an existing Searcher.
// Args:
//
//   - searcher: Baseline Searcher. It must return the scores of all directions.
//   - randomness (>=0): Amount of randomness to use: it is applied as a divisor to the scores
//     returned by the Searcher. The larger the value the more it leads to randomness, and lower values
//     lead to "pick the best scoring move", with zero meaning no randomness.
//   - rng: source of randomness, see NewRand.
func NewRandomizedSearcher(searcher Searcher, randomness float64, rng *rand.Rand) Searcher {
	if randomness <= 0 {
		// Without randomness, simply return the original Searcher.
		return searcher
	}
	return &randomizedSearcher{searcher: searcher, randomness: randomness, rng: rng}
}

// randomizedSearcher is a meta Searcher, that samples the direction from a softmax of the scores.
type randomizedSearcher struct {
	searcher   Searcher
	randomness float64
	rng        *rand.Rand
}

// Assert randomizedSearcher is a Searcher.
var _ Searcher = &randomizedSearcher{}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (chosenAction Direction, score float32, actionsScores []float32) {
	chosenAction, score, actionsScores = rs.searcher.Search(grid, me, myNum, opp)
	if len(actionsScores) != NumDirections {
		exceptions.Panicf("randomizedSearcher: Searcher returned %d actionsScores, wanted %d", len(actionsScores), NumDirections)
	}
	numLegal := 0
	for _, s := range actionsScores {
		if !math.IsInf(float64(s), -1) {
			numLegal++
		}
	}
	if numLegal <= 1 {
		// Nothing to choose from.
		return
	}

	// Calculate probability for each direction: illegal ones get 0.
	logits := make([]float64, len(actionsScores))
	for ii, s := range actionsScores {
		logits[ii] = float64(s) / rs.randomness
	}
	probabilities := softmax(logits)

	chance := rs.rng.Float64()
	for actionIdx, value := range probabilities {
		if chance > value {
			chance -= value
			continue
		}
		if value == 0 {
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("randomizedSearcher selection: action=%s, score=%g", Direction(actionIdx), actionsScores[actionIdx])
		}
		return Direction(actionIdx), actionsScores[actionIdx], actionsScores
	}
	// Rounding errors may leave a tiny remaining chance: keep the base searcher's choice.
	return
}

func softmax(values []float64) (probs []float64) {
	probs = make([]float64, len(values))
	var sum float64

	// Subtract maxValue from all values keep the probability the same, but makes for more numerically stable
	// values.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
