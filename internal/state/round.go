package state

import (
	"fmt"
	"k8s.io/klog/v2"
)

// Round holds the state of one round (a match) between the two light cycles.
//
// Both players move at the same time: the game loop collects one Direction per player, each computed on its
// own Snapshot, and then calls Act.
type Round struct {
	grid *Grid

	// Heads are the current positions of each player.
	Heads [NumPlayers]Pos

	// LastMoves taken by each player. Before the first move, they point towards the opponent.
	LastMoves [NumPlayers]Direction

	// MoveNumber is the number of Act calls so far: each one moves both players.
	MoveNumber int

	// MaxMoves after which the round is considered a draw. 0 means no limit.
	MaxMoves int

	// Dead marks players who crashed.
	Dead [NumPlayers]bool

	headOn bool
}

// NewRound creates a grid with the given dimensions and places the players on their starting positions:
// the first player 5 cells from the left border, the second 6 cells from the right, both on the middle row.
func NewRound(cols, rows int) *Round {
	r := &Round{
		grid:      NewGrid(cols, rows),
		Heads:     [NumPlayers]Pos{{5, rows / 2}, {cols - 6, rows / 2}},
		LastMoves: [NumPlayers]Direction{Right, Left},
	}
	for player, head := range r.Heads {
		r.grid.Set(head, PlayerNum(player).Cell())
	}
	return r
}

// NewRoundFromGrid creates a Round with an arbitrary starting grid and head positions. The grid is owned by the
// Round afterwards.
func NewRoundFromGrid(grid *Grid, heads [NumPlayers]Pos) *Round {
	r := &Round{grid: grid, Heads: heads, LastMoves: [NumPlayers]Direction{Right, Left}}
	for player, head := range heads {
		if grid.At(head) == Empty {
			grid.Set(head, PlayerNum(player).Cell())
		}
	}
	return r
}

// Grid returns the live grid. Players should be given a Snapshot instead.
func (r *Round) Grid() *Grid {
	return r.grid
}

// Snapshot returns an independent copy of the current grid, to be handed to one player for one decision.
func (r *Round) Snapshot() *Grid {
	return r.grid.Clone()
}

// Act moves both players simultaneously.
//
// A player crashes if its destination is out of the grid or already occupied. If both players move to the
// same cell, both crash. If anyone crashes the round is finished and the grid is left unchanged.
func (r *Round) Act(moves [NumPlayers]Direction) {
	if r.IsFinished() {
		klog.Warningf("Round.Act(%v) called on a finished round", moves)
		return
	}
	var next [NumPlayers]Pos
	for player, dir := range moves {
		next[player] = r.Heads[player].Neighbor(dir)
		r.Dead[player] = !r.grid.IsEmpty(next[player])
	}
	if next[0] == next[1] {
		r.Dead[0], r.Dead[1] = true, true
		r.headOn = true
	}
	r.LastMoves = moves
	r.MoveNumber++
	if r.Dead[0] || r.Dead[1] {
		if klog.V(2).Enabled() {
			klog.Infof("Move #%d: crash, dead=%v, moves=%v", r.MoveNumber, r.Dead, moves)
		}
		return
	}
	for player := range NumPlayers {
		r.Heads[player] = next[player]
		r.grid.Set(next[player], PlayerNum(player).Cell())
	}
}

// IsFinished returns whether any player crashed or the max number of moves was reached.
func (r *Round) IsFinished() bool {
	return r.Dead[0] || r.Dead[1] || (r.MaxMoves > 0 && r.MoveNumber >= r.MaxMoves)
}

// Draw returns whether the round finished without a winner.
func (r *Round) Draw() bool {
	return r.IsFinished() && r.Dead[0] == r.Dead[1]
}

// Winner returns the player that won the round.
// If it is a Draw or the round is not finished, it returns PlayerInvalid.
func (r *Round) Winner() PlayerNum {
	if !r.IsFinished() || r.Draw() {
		return PlayerInvalid
	}
	if r.Dead[1] {
		return PlayerFirst
	}
	return PlayerSecond
}

// FinishReason describes how the round ended.
func (r *Round) FinishReason() string {
	if !r.IsFinished() {
		return "round not finished yet"
	}
	if r.headOn {
		return "head-on collision"
	}
	if r.Winner() != PlayerInvalid {
		return fmt.Sprintf("%s player crashed", r.Winner().Opponent())
	}
	if r.Dead[0] && r.Dead[1] {
		return "both players crashed"
	}
	return fmt.Sprintf("max number of moves %d was reached", r.MaxMoves)
}
