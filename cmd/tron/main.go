// tron plays light cycle rounds on the terminal: a human (arrows or WASD, "q" to quit) against an AI,
// or two AIs with -watch.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/tronGo/internal/config"
	"github.com/janpfeifer/tronGo/internal/players"
	_ "github.com/janpfeifer/tronGo/internal/players/default"
	. "github.com/janpfeifer/tronGo/internal/state"
	"github.com/janpfeifer/tronGo/internal/ui/cli"
	"github.com/janpfeifer/tronGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"time"
)

var (
	flagWatch       = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagAIConfig    = flag.String("config", players.DefaultPlayerConfig, "AI configuration against which to play")
	flagAIConfig2   = flag.String("config2", players.DefaultPlayerConfig, "First AI configuration, if playing AI vs AI with -watch")
	flagMatches     = flag.Int("matches", 5, "Number of rounds to play")
	flagMatchConfig = flag.String("match_config", "", "YAML file with board size, names, tick and pause. "+
		"Its players are ignored, use -config and -config2.")
	flagNoColor = flag.Bool("no_color", false, "Disable colors")

	globalCtx = context.Background()
)

// errQuit is returned when the human quits the game.
var errQuit = errors.New("player quit")

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	defer spinning.Reset()

	cfg := config.Default()
	if *flagMatchConfig != "" {
		cfg = must.M1(config.Load(*flagMatchConfig))
	}
	cfg.Matches = *flagMatches
	must.M(cfg.Validate())

	ui := cli.New(!*flagNoColor, true)
	ui.Names = cfg.Names

	var keys *cli.KeyReader
	if !*flagWatch {
		ui.Names[PlayerFirst] = "YOU"
		keys = must.M1(cli.NewKeyReader(globalCtx))
		defer func() { _ = keys.Close() }()
		ui.WithRawMode(true)
	}

	var scores [NumPlayers]int
	played := 0
	for roundIdx := range cfg.Matches {
		aiPlayers := must.M1(createPlayers())
		round := NewRound(cfg.Board.Cols, cfg.Board.Rows)
		round.MaxMoves = cfg.MaxMoves
		title := fmt.Sprintf("Round %d of %d", roundIdx+1, cfg.Matches)
		err := playRound(globalCtx, cfg, ui, title, round, aiPlayers, keys, scores)
		if err != nil {
			if errors.Is(err, errQuit) || globalCtx.Err() != nil {
				break
			}
			must.M(err)
		}
		played++
		if winner := round.Winner(); winner != PlayerInvalid {
			scores[winner]++
		}
		ui.Print(title, round, scores)
		ui.PrintWinner(round)
		if roundIdx < cfg.Matches-1 {
			if spinning.Pause(globalCtx, "Next round", cfg.Pause) != nil {
				break
			}
		}
	}
	ui.PrintFinalScore(scores, played)
}

// createPlayers returns the AI players: in watch mode both, otherwise only the second, with the first left nil
// for the human.
func createPlayers() (aiPlayers [NumPlayers]players.Player, err error) {
	aiPlayers[PlayerSecond], err = players.New(PlayerSecond, *flagAIConfig)
	if err != nil || !*flagWatch {
		return
	}
	aiPlayers[PlayerFirst], err = players.New(PlayerFirst, *flagAIConfig2)
	return
}

// playRound until it is finished. Every tick each AI decides on its own snapshot of the grid, the human's
// move is the last direction steered.
func playRound(ctx context.Context, cfg *config.Match, ui *cli.UI, title string, round *Round,
	aiPlayers [NumPlayers]players.Player, keys *cli.KeyReader, scores [NumPlayers]int) error {
	steering := cli.NewSteering(round.LastMoves[PlayerFirst])
	var commands <-chan cli.Command
	if keys != nil {
		commands = keys.Commands()
	}
	tick := cfg.Tick
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	ui.Print(title, round, scores)
	for !round.IsFinished() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-commands:
			if cmd.Quit {
				return errQuit
			}
			steering.Request(cmd.Dir, round.LastMoves[PlayerFirst])
			continue
		case <-ticker.C:
		}

		var moves [NumPlayers]Direction
		for playerIdx, player := range aiPlayers {
			playerNum := PlayerNum(playerIdx)
			if player == nil {
				moves[playerIdx] = steering.Next()
				continue
			}
			var score float32
			moves[playerIdx], score = player.Play(round.Snapshot(), round.Heads[playerNum], playerNum,
				round.Heads[playerNum.Opponent()])
			klog.V(1).Infof("%s: %s plays %s (score=%.1f)", title, player, moves[playerIdx], score)
		}
		round.Act(moves)
		ui.Print(title, round, scores)
	}
	return nil
}
