// arena plays a tournament between two AI configurations and prints a running scoreboard.
//
// Example:
//
//	$ go run ./cmd/arena -ai1="voronoi:openness=0.5" -ai2="voronoi:openness=0,shuffle=false" -num_matches=40
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/tronGo/internal/arena"
	"github.com/janpfeifer/tronGo/internal/config"
	_ "github.com/janpfeifer/tronGo/internal/players/default"
	"github.com/janpfeifer/tronGo/internal/profilers"
	. "github.com/janpfeifer/tronGo/internal/state"
	"github.com/janpfeifer/tronGo/internal/ui/cli"
	"github.com/janpfeifer/tronGo/internal/ui/spinning"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
	"sync"
	"time"
)

var (
	flagMatchConfig   = flag.String("match_config", "", "YAML file with the match configuration. Flags set explicitly override it.")
	flagPlayer1Config = flag.String("ai1", "", "1st AI configuration, e.g. \"voronoi:seed=7\".")
	flagPlayer2Config = flag.String("ai2", "", "2nd AI configuration.")
	flagNumMatches    = flag.Int("num_matches", config.DefaultMatches, "Number of matches to play, up to 100.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set -parallelism=1.")
	flagMaxMoves = flag.Int("max_moves", 0, "Max moves before a match is considered a draw. 0 for no limit.")
)

// globalCtx is cancelled when the program is interrupted (Ctrl+C).
var globalCtx = context.Background()

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	prof := must.M1(profilers.Setup(globalCtx))
	defer prof.OnQuit()

	cfg := must.M1(matchConfig())
	fmt.Printf("Tournament: AI-1=%q vs AI-2=%q, %d matches on %dx%d\n",
		cfg.Players[0], cfg.Players[1], cfg.Matches, cfg.Board.Cols, cfg.Board.Rows)

	var onStep arena.StepFn
	onResult := func(r *arena.Results) { fmt.Printf("%s\n", r) }
	if *flagPrintSteps {
		onStep = printStep(cfg)
	} else {
		bar := progressbar.NewOptions(cfg.Matches,
			progressbar.OptionSetDescription("Matches"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish())
		onResult = func(r *arena.Results) {
			bar.Describe(fmt.Sprintf("AI-1 %d / AI-2 %d / draws %d", r.Wins(0), r.Wins(1), r.TotalDraws()))
			_ = bar.Add(1)
		}
		defer func() { _ = bar.Finish() }()
	}
	results, err := arena.Run(globalCtx, cfg, onStep, onResult)
	fmt.Printf("\n%s\n", results)
	if globalCtx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", globalCtx.Err())
		return
	}
	must.M(err)
	switch leader := results.Leader(); leader {
	case -1:
		fmt.Println("Tournament tied.")
	default:
		fmt.Printf("AI-%d (%q) wins the tournament with %.1f%% of the matches.\n",
			leader+1, cfg.Players[leader], 100*results.WinRate(leader))
	}
}

// matchConfig builds the configuration from -match_config, overridden by the flags explicitly set.
func matchConfig() (cfg *config.Match, err error) {
	cfg = config.Default()
	if *flagMatchConfig != "" {
		cfg, err = config.Load(*flagMatchConfig)
		if err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ai1":
			cfg.Players[0] = *flagPlayer1Config
		case "ai2":
			cfg.Players[1] = *flagPlayer2Config
		case "num_matches":
			cfg.Matches = *flagNumMatches
		case "parallelism":
			cfg.Parallelism = *flagParallelism
		case "max_moves":
			cfg.MaxMoves = *flagMaxMoves
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printStep returns a StepFn that prints every board, serialized across the parallel matches.
func printStep(cfg *config.Match) arena.StepFn {
	var mu sync.Mutex
	ui := cli.New(true, false)
	ui.Names = cfg.Names
	return func(matchNum int, round *Round) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Println()
		ui.Print(arena.MatchName(matchNum), round, [NumPlayers]int{})
		if round.IsFinished() {
			ui.PrintWinner(round)
		}
		fmt.Println("------------------")
	}
}
