// Package arena plays matches between two AI players: single rounds with RunMatch, and tournaments
// with a running scoreboard in Run.
package arena

import (
	"context"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/tronGo/internal/config"
	"github.com/janpfeifer/tronGo/internal/players"
	. "github.com/janpfeifer/tronGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
)

// StepFn is called after every move of a match, and once at the start. It is called from the goroutine running
// the match, so it must be safe for concurrent use if matches are played in parallel.
type StepFn func(matchNum int, round *Round)

// RunMatch plays one round between matchPlayers on a fresh board, until someone crashes.
//
// At every tick each player is called, one after the other, with its own snapshot of the grid; then both
// moves are applied at once. A player that panics is reported as an error.
//
// If ctx is cancelled, it returns PlayerInvalid and the context error.
func RunMatch(ctx context.Context, cfg *config.Match, matchNum int, matchPlayers [NumPlayers]players.Player, onStep StepFn) (winner PlayerNum, round *Round, err error) {
	if klog.V(1).Enabled() {
		klog.Infof("Starting match %d: %s vs %s", matchNum, matchPlayers[0], matchPlayers[1])
		defer klog.Infof("Finished match %d", matchNum)
	}
	round = NewRound(cfg.Board.Cols, cfg.Board.Rows)
	round.MaxMoves = cfg.MaxMoves
	if onStep != nil {
		onStep(matchNum, round)
	}
	for !round.IsFinished() {
		if ctx.Err() != nil {
			klog.V(1).Infof("Match %d interrupted: %s", matchNum, ctx.Err())
			return PlayerInvalid, round, ctx.Err()
		}
		var moves [NumPlayers]Direction
		for playerIdx, player := range matchPlayers {
			playerNum := PlayerNum(playerIdx)
			err = exceptions.TryCatch[error](func() {
				moves[playerIdx], _ = player.Play(round.Snapshot(), round.Heads[playerNum], playerNum,
					round.Heads[playerNum.Opponent()])
			})
			if err != nil {
				return PlayerInvalid, round, errors.WithMessagef(err, "match %d, move #%d: player %s (%s) failed",
					matchNum, round.MoveNumber, playerNum, player)
			}
		}
		round.Act(moves)
		if onStep != nil {
			onStep(matchNum, round)
		}
	}
	if klog.V(1).Enabled() {
		klog.Infof("Match %d: %s after %d moves", matchNum, round.FinishReason(), round.MoveNumber)
	}
	return round.Winner(), round, nil
}

// Run plays cfg.Matches matches between the AIs configured in cfg.Players, alternating which one starts on
// the left side (the first player), and returns the results.
//
// New players are created for every match, since AI players are not safe for concurrent use. Matches are
// played in parallel, up to cfg.Parallelism (or GOMAXPROCS if 0) at a time.
//
// onResult, if not nil, is called after each match is recorded, with the results lock held.
func Run(ctx context.Context, cfg *config.Match, onStep StepFn, onResult func(r *Results)) (*Results, error) {
	r := NewResults(cfg.Matches)
	var wg errgroup.Group
	wg.SetLimit(Parallelism(cfg))
	for matchIdx := range cfg.Matches {
		wg.Go(func() error {
			swapped := matchIdx%2 == 1
			matchPlayers, err := NewMatchPlayers(cfg, swapped)
			if err != nil {
				return err
			}
			winner, round, err := RunMatch(ctx, cfg, matchIdx, matchPlayers, onStep)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			r.mu.Lock()
			defer r.mu.Unlock()
			r.record(winner, swapped, round.MoveNumber)
			if onResult != nil {
				onResult(r)
			}
			return nil
		})
	}
	err := wg.Wait()
	return r, err
}

// NewMatchPlayers creates the players of a match from cfg.Players. If swapped, the second configured AI plays
// as the first player (on the left side).
func NewMatchPlayers(cfg *config.Match, swapped bool) (matchPlayers [NumPlayers]players.Player, err error) {
	for side := range NumPlayers {
		aiIdx := side
		if swapped {
			aiIdx = 1 - side
		}
		matchPlayers[side], err = players.New(PlayerNum(side), cfg.Players[aiIdx])
		if err != nil {
			return
		}
	}
	return
}

// Parallelism returns the number of matches to play simultaneously.
func Parallelism(cfg *config.Match) int {
	if cfg.Parallelism > 0 {
		return cfg.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

// MatchName used for logging and display.
func MatchName(matchNum int) string {
	return fmt.Sprintf("Match-%03d", matchNum+1)
}
