package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("seed=3, shuffle ,openness=0.25,,expr=a=b")
	assert.Equal(t, Params{"seed": "3", "shuffle": "", "openness": "0.25", "expr": "a=b"}, params)
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("seed=3,shuffle,openness=0.25,randomness=2,fast=false,tick=80ms,name=blue,bad=x")

	seed, err := GetParamOr(params, "seed", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, seed)

	shuffle, err := GetParamOr(params, "shuffle", false)
	require.NoError(t, err)
	assert.True(t, shuffle)

	fast, err := GetParamOr(params, "fast", true)
	require.NoError(t, err)
	assert.False(t, fast)

	openness, err := GetParamOr(params, "openness", float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), openness)

	randomness, err := GetParamOr(params, "randomness", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, randomness)

	tick, err := GetParamOr(params, "tick", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 80*time.Millisecond, tick)

	name, err := GetParamOr(params, "name", "red")
	require.NoError(t, err)
	assert.Equal(t, "blue", name)

	missing, err := GetParamOr(params, "missing", 17)
	require.NoError(t, err)
	assert.Equal(t, 17, missing)

	_, err = GetParamOr(params, "bad", 0)
	require.Error(t, err)
	_, err = GetParamOr(params, "bad", false)
	require.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("seed=3,extra,other=1")
	seed, err := PopParamOr(params, "seed", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, seed)
	assert.NotContains(t, params, "seed")

	err = CheckAllUsed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"extra", "other"`)

	delete(params, "extra")
	delete(params, "other")
	require.NoError(t, CheckAllUsed(params))
}
