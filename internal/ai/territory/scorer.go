package territory

import (
	"fmt"
	"github.com/janpfeifer/tronGo/internal/ai"
	. "github.com/janpfeifer/tronGo/internal/state"
)

// DefaultOpennessWeight is the weight of the number of open neighbors of the destination cell. It is small
// enough that it only breaks ties between moves with the same territory.
const DefaultOpennessWeight = float32(0.5)

// Scorer implements ai.MoveScorer: the score of a move is the territory claimed from the destination cell
// plus OpennessWeight times the number of open neighbors of the destination.
type Scorer struct {
	// OpennessWeight multiplies the number of open neighbors (0 to 4).
	OpennessWeight float32

	// MaxIterations caps the flood fill. If 0, MaxIterationsFor picks a value large enough for the grid.
	MaxIterations int
}

// Assert Scorer is an ai.MoveScorer.
var _ ai.MoveScorer = (*Scorer)(nil)

// NewScorer returns a Scorer with the default configuration.
func NewScorer() *Scorer {
	return &Scorer{OpennessWeight: DefaultOpennessWeight}
}

// WithOpennessWeight sets the weight of the openness term.
func (s *Scorer) WithOpennessWeight(weight float32) *Scorer {
	s.OpennessWeight = weight
	return s
}

// WithMaxIterations sets the cap on the flood fill. Values <= 0 select the default for the grid.
func (s *Scorer) WithMaxIterations(maxIterations int) *Scorer {
	s.MaxIterations = max(maxIterations, 0)
	return s
}

// ScoreMove implements ai.MoveScorer.
func (s *Scorer) ScoreMove(grid *Grid, next, opp Pos) float32 {
	territory := Territory(grid, next, opp, MaxIterationsFor(grid, s.MaxIterations))
	return float32(territory) + s.OpennessWeight*float32(OpenNeighbors(grid, next))
}

// String implements ai.MoveScorer.
func (s *Scorer) String() string {
	return fmt.Sprintf("territory(openness=%g)", s.OpennessWeight)
}
