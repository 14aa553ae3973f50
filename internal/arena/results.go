package arena

import (
	"fmt"
	. "github.com/janpfeifer/tronGo/internal/state"
	"strings"
	"sync"
	"time"
)

// Results of a tournament. Players are indexed by their position in the tournament (AI-1 and AI-2),
// independent of which side they played in each match.
type Results struct {
	mu    sync.Mutex
	start time.Time

	// Wins per player, split by the side played.
	WinsAsFirst, WinsAsSecond [NumPlayers]int

	// Draws, indexed by the player who played as first.
	Draws [NumPlayers]int

	// Played and Total number of matches.
	Played, Total int

	// Moves accumulated over all played matches.
	Moves int
}

// NewResults creates an empty scoreboard for total matches.
func NewResults(total int) *Results {
	return &Results{start: time.Now(), Total: total}
}

// Record the result of a match, given the winner side (PlayerInvalid for a draw) and whether the players
// were swapped (AI-2 played as first). It is safe for concurrent use.
func (r *Results) Record(winner PlayerNum, swapped bool, moves int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(winner, swapped, moves)
}

func (r *Results) record(winner PlayerNum, swapped bool, moves int) {
	r.Played++
	r.Moves += moves
	playerAsFirst := 0
	if swapped {
		playerAsFirst = 1
	}
	if winner == PlayerInvalid {
		r.Draws[playerAsFirst]++
		return
	}
	playerIdx := int(winner)
	if swapped {
		playerIdx = 1 - playerIdx
	}
	if winner == PlayerFirst {
		r.WinsAsFirst[playerIdx]++
	} else {
		r.WinsAsSecond[playerIdx]++
	}
}

// Wins of the player, on either side.
func (r *Results) Wins(playerIdx int) int {
	return r.WinsAsFirst[playerIdx] + r.WinsAsSecond[playerIdx]
}

// TotalDraws on either side.
func (r *Results) TotalDraws() int {
	return r.Draws[0] + r.Draws[1]
}

// WinRate of the player over the played matches, from 0 to 1.
func (r *Results) WinRate(playerIdx int) float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Wins(playerIdx)) / float64(r.Played)
}

// Leader returns the index of the player with more wins, or -1 if tied.
func (r *Results) Leader() int {
	switch w0, w1 := r.Wins(0), r.Wins(1); {
	case w0 > w1:
		return 0
	case w1 > w0:
		return 1
	}
	return -1
}

// String returns a one line scoreboard.
func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.Played, r.Total))
	for playerIdx := range NumPlayers {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d, %.0f%%) / ",
				playerIdx+1, r.Wins(playerIdx),
				r.WinsAsFirst[playerIdx], r.WinsAsSecond[playerIdx], 100*r.WinRate(playerIdx)))
	}
	parts = append(parts, fmt.Sprintf("%d draws - ", r.TotalDraws()))
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	return strings.Join(parts, "")
}
