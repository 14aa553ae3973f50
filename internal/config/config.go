// Package config holds the configuration of a series of matches, optionally loaded from a YAML file:
//
//	board:
//	  cols: 30
//	  rows: 30
//	matches: 20
//	players: ["voronoi:seed=1", "random"]
//	names: ["BLUE BOT", "RED BOT"]
//	tick: 80ms
//	pause: 2s
package config

import (
	"github.com/janpfeifer/tronGo/internal/state"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	// DefaultMatches played in a tournament.
	DefaultMatches = 20

	// MaxMatches is the upper limit of matches in a tournament, larger values are clamped.
	MaxMatches = 100
)

// Board dimensions, in cells.
type Board struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Match configuration.
type Match struct {
	Board Board `yaml:"board"`

	// Matches (rounds) to play.
	Matches int `yaml:"matches"`

	// Players configuration strings, see players.New.
	Players [state.NumPlayers]string `yaml:"players"`

	// Names displayed for the players.
	Names [state.NumPlayers]string `yaml:"names"`

	// Tick is the delay between moves when displaying a match. 0 means no delay.
	Tick time.Duration `yaml:"tick"`

	// Pause between rounds when displaying matches.
	Pause time.Duration `yaml:"pause"`

	// MaxMoves per round, after which it is a draw. 0 means no limit.
	MaxMoves int `yaml:"max_moves"`

	// Parallelism is the number of matches played simultaneously. 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`
}

// Default returns the configuration used when nothing is given.
func Default() *Match {
	return &Match{
		Board:   Board{Cols: state.DefaultCols, Rows: state.DefaultRows},
		Matches: DefaultMatches,
		Players: [state.NumPlayers]string{"voronoi", "voronoi"},
		Names:   [state.NumPlayers]string{"BLUE BOT", "RED BOT"},
		Tick:    80 * time.Millisecond,
		Pause:   2 * time.Second,
	}
}

// Load reads the YAML configuration file at path. Fields not set in the file keep their Default values.
func Load(path string) (*Match, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read match configuration")
	}
	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse match configuration in %q", path)
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid match configuration in %q", path)
	}
	return cfg, nil
}

// Validate checks the configuration, and normalizes it: the number of matches is clamped to 1..MaxMatches,
// and empty names are replaced by the default ones.
func (m *Match) Validate() error {
	if m.Board.Cols < 12 || m.Board.Rows < 1 {
		return errors.Errorf("board must have at least 12 columns and 1 row, got %dx%d", m.Board.Cols, m.Board.Rows)
	}
	if m.Matches <= 0 {
		m.Matches = 1
	}
	m.Matches = min(m.Matches, MaxMatches)
	defaults := Default()
	for ii, name := range m.Names {
		if name == "" {
			m.Names[ii] = defaults.Names[ii]
		}
	}
	if m.Tick < 0 || m.Pause < 0 {
		return errors.Errorf("tick (%s) and pause (%s) must be >= 0", m.Tick, m.Pause)
	}
	if m.MaxMoves < 0 || m.Parallelism < 0 {
		return errors.Errorf("max_moves (%d) and parallelism (%d) must be >= 0", m.MaxMoves, m.Parallelism)
	}
	return nil
}
