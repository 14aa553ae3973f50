package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
board:
  cols: 40
  rows: 20
matches: 7
players: ["voronoi:seed=1", "random"]
names: ["", "RANDO"]
tick: 10ms
pause: 0s
max_moves: 500
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Board{Cols: 40, Rows: 20}, cfg.Board)
	assert.Equal(t, 7, cfg.Matches)
	assert.Equal(t, "voronoi:seed=1", cfg.Players[0])
	assert.Equal(t, "random", cfg.Players[1])
	assert.Equal(t, "BLUE BOT", cfg.Names[0])
	assert.Equal(t, "RANDO", cfg.Names[1])
	assert.Equal(t, 10*time.Millisecond, cfg.Tick)
	assert.Equal(t, time.Duration(0), cfg.Pause)
	assert.Equal(t, 500, cfg.MaxMoves)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "matches: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, MaxMatches, cfg.Matches)
	assert.Equal(t, 30, cfg.Board.Cols)
	assert.Equal(t, 80*time.Millisecond, cfg.Tick)
	assert.Equal(t, [2]string{"voronoi", "voronoi"}, cfg.Players)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "board: [1, 2"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "board: {cols: 5, rows: 5}"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "tick: -1s"))
	require.Error(t, err)
}

func TestValidateClamps(t *testing.T) {
	cfg := Default()
	cfg.Matches = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Matches)
}
