// Package ai (Artificial Intelligence) defines standard interfaces that AIs for the game
// have to implement.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/tronGo/internal/state"
)

// IllegalMoveScore is the score given to moves that crash immediately.
var IllegalMoveScore = math32.Inf(-1)

// MoveScorer scores the position a player would reach after a move.
//
// Scorers must treat the grid as read-only: it is a snapshot shared by all the candidate moves
// evaluated for one decision.
type MoveScorer interface {
	// ScoreMove returns how good it is for the player to move its head to next, while the opponent
	// is at opp. The higher the better.
	ScoreMove(grid *Grid, next, opp Pos) float32

	String() string
}

// IsLegal returns whether a player at pos can move in the given direction without crashing, and the
// resulting position.
func IsLegal(grid *Grid, pos Pos, dir Direction) (next Pos, legal bool) {
	next = pos.Neighbor(dir)
	return next, grid.IsEmpty(next)
}

// LegalMoves returns the directions a player at pos can take without crashing, in the order of Directions.
func LegalMoves(grid *Grid, pos Pos) (moves []Direction) {
	moves = make([]Direction, 0, NumDirections)
	for _, dir := range Directions {
		if _, legal := IsLegal(grid, pos, dir); legal {
			moves = append(moves, dir)
		}
	}
	return
}
