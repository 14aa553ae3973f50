package _default

import (
	"github.com/janpfeifer/tronGo/internal/players"
	"github.com/janpfeifer/tronGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewPlayers(t *testing.T) {
	assert.Equal(t, []string{"random", "voronoi"}, players.ModuleNames())

	p, err := players.New(state.PlayerFirst, "")
	require.NoError(t, err)
	assert.Equal(t, "voronoi(greedy+shuffle/territory(openness=0.5))", p.String())

	p, err = players.New(state.PlayerSecond, "voronoi:shuffle=false,openness=0.25,max_iterations=5000")
	require.NoError(t, err)
	assert.Equal(t, "voronoi(greedy/territory(openness=0.25))", p.String())

	p, err = players.New(state.PlayerSecond, "voronoi:seed=3,randomness=2")
	require.NoError(t, err)
	assert.Contains(t, p.String(), "randomness=2")

	p, err = players.New(state.PlayerSecond, "random:seed=1")
	require.NoError(t, err)
	assert.Equal(t, "random", p.String())
}

func TestNewPlayersErrors(t *testing.T) {
	_, err := players.New(state.PlayerFirst, "minimax")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random, voronoi")

	_, err = players.New(state.PlayerFirst, "voronoi:depth=3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")

	_, err = players.New(state.PlayerFirst, "voronoi:seed=abc")
	require.Error(t, err)

	_, err = players.New(state.PlayerFirst, "voronoi:max_iterations=-1")
	require.Error(t, err)
}

func TestVoronoiPlays(t *testing.T) {
	p, err := players.New(state.PlayerFirst, "voronoi:shuffle=false")
	require.NoError(t, err)
	grid := state.NewGrid(10, 10)
	me, opp := state.Pos{2, 5}, state.Pos{7, 5}
	grid.Set(me, state.OwnedByFirst)
	grid.Set(opp, state.OwnedBySecond)
	action, score := p.Play(grid, me, state.PlayerFirst, opp)
	assert.Equal(t, state.Right, action)
	assert.Equal(t, float32(60.5), score)
}
