// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"github.com/janpfeifer/tronGo/internal/generics"
	"github.com/janpfeifer/tronGo/internal/parameters"
	. "github.com/janpfeifer/tronGo/internal/state"
	"github.com/pkg/errors"
	"slices"
	"strings"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the direction chosen for the player myNum, whose head is at me, with the opponent's head at opp,
	// and optionally a score for the chosen direction.
	//
	// The grid is a snapshot owned by the caller for the duration of the call: it must not be modified.
	Play(grid *Grid, me Pos, myNum PlayerNum, opp Pos) (action Direction, score float32)

	// String returns a description of the player, used in logs and UIs.
	String() string
}

// Module must implement NewPlayer called at the start of a match.
// playerNum is the side the player will play, and params the configuration of the player: the module
// must pop the parameters it uses, any parameter left is reported as an error.
type Module interface {
	NewPlayer(playerNum PlayerNum, params parameters.Params) (Player, error)
}

var (
	// Registered modules, by name.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// ModuleNames returns the names of the registered modules, sorted.
func ModuleNames() []string {
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "voronoi"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the AI name optionally followed by a colon (":") and a comma-separated list of parameters with optional
//		values associated. E.g.: "voronoi:seed=3,shuffle=false".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(playerNum PlayerNum, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}

	// Find moduleName.
	moduleName, config, _ := strings.Cut(config, ":")
	moduleName = strings.TrimSpace(moduleName)
	module, ok := keywordToModules[moduleName]
	if !ok {
		if len(keywordToModules) == 0 {
			return nil, errors.Errorf("unknown AI player %q: no modules registered, perhaps you need "+
				"to import _ \"github.com/janpfeifer/tronGo/internal/players/default\" to your binary ?", moduleName)
		}
		return nil, errors.Errorf("unknown AI player %q, valid values are: %s",
			moduleName, strings.Join(ModuleNames(), ", "))
	}

	params := parameters.NewFromConfigString(config)
	player, err := module.NewPlayer(playerNum, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "AI player %q", moduleName)
	}
	return player, nil
}
