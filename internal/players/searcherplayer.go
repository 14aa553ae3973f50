package players

import (
	"github.com/janpfeifer/tronGo/internal/searchers"
	. "github.com/janpfeifer/tronGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherPlayer is the standard set up for an AI: a searchers.Searcher choosing the direction.
// It implements the Player interface.
type SearcherPlayer struct {
	Name     string
	Searcher searchers.Searcher
}

// Assert that SearcherPlayer is a Player.
var _ Player = &SearcherPlayer{}

// NewSearcherPlayer returns a Player that uses the searcher to choose its moves.
func NewSearcherPlayer(name string, searcher searchers.Searcher) *SearcherPlayer {
	return &SearcherPlayer{Name: name, Searcher: searcher}
}

// Play implements the Player interface.
func (p *SearcherPlayer) Play(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (action Direction, score float32) {
	action, score, _ = p.Searcher.Search(grid, me, myNum, opp)
	if klog.V(2).Enabled() {
		klog.Infof("AI (%s) %s player at %s playing %s, score=%.1f", p.Name, myNum, me, action, score)
	}
	return
}

// String implements Player.
func (p *SearcherPlayer) String() string {
	return p.Name
}
