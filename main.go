package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/holdem/domain"
	"github.com/lazharichir/holdem/domain/events"
	"github.com/lazharichir/holdem/table"
)

type CLI struct {
	Players    int           `default:"4" help:"Number of players (2-9)"`
	Hands      int           `default:"10" help:"Number of hands to play"`
	SmallBlind int           `default:"5" help:"Small blind"`
	BigBlind   int           `default:"10" help:"Big blind"`
	Chips      int           `default:"1000" help:"Starting stack per player"`
	Seed       int64         `default:"0" help:"RNG seed (0 for random)"`
	Timeout    time.Duration `default:"0" help:"Per-move timeout (0 disables)"`
	Verbose    bool          `short:"v" help:"Verbose logging"`
	DumpEvents bool          `help:"Dump the full event log when done"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine, played by random seats"),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting simulation", "players", cli.Players, "hands", cli.Hands, "seed", seed)

	game, err := domain.NewGame("", domain.Rules{
		SmallBlind:    cli.SmallBlind,
		BigBlind:      cli.BigBlind,
		StartingChips: cli.Chips,
	}, rng)
	if err != nil {
		return err
	}

	game.RegisterEventHandler(func(e events.Event) {
		logger.Debug(e.EventName(), "player", events.ExtractPlayerID(e))
	})

	for i := 1; i <= cli.Players; i++ {
		if err := game.Join(fmt.Sprintf("p%d", i), fmt.Sprintf("Player %d", i)); err != nil {
			return err
		}
	}

	runner := table.NewRunner(game, logger, quartz.NewReal(), cli.Timeout)
	runner.Start()
	defer runner.Stop()

	ctx := context.Background()
	for hand := 1; hand <= cli.Hands; hand++ {
		var left int
		if err := runner.Query(ctx, func(g *domain.Game) { left = remaining(g) }); err != nil {
			return err
		}
		if left < 2 {
			logger.Info("only one player left, stopping early", "hand", hand)
			break
		}
		if err := runner.StartHand(ctx); err != nil {
			return err
		}
		if err := playHand(ctx, runner, rng, logger); err != nil {
			return err
		}

		var result domain.HandResult
		var resultErr error
		if err := runner.Query(ctx, func(g *domain.Game) { result, resultErr = g.HandResult() }); err != nil {
			return err
		}
		if resultErr != nil {
			return resultErr
		}
		logger.Info("hand finished", "hand", hand, "winners", result.Winners, "chips", result.FinalChips)
	}

	if cli.DumpEvents {
		fmt.Println(litter.Sdump(game.Events))
	}

	return nil
}

// playHand drives one hand to completion by picking a random legal move
// for whoever holds the action. All game reads go through the runner's
// loop; touching the game directly would race with timeout fallbacks.
func playHand(ctx context.Context, runner *table.Runner, rng *rand.Rand, logger *log.Logger) error {
	for {
		var (
			done    bool
			actor   string
			move    domain.Move
			viewErr error
		)
		err := runner.Query(ctx, func(g *domain.Game) {
			if g.State.Finished || g.State.Action < 0 {
				done = true
				return
			}
			actor = g.State.Players[g.State.Action].ID

			view, err := g.View(actor)
			if err != nil {
				viewErr = err
				return
			}
			logger.Debug("actor view",
				"player", actor,
				"round", view.Round,
				"pot", view.Pot,
				"board", view.CommunityCards.String(),
				"to_act", len(view.ToActPlayers))

			move = pickMove(g, actor, rng)
		})
		if err != nil {
			return err
		}
		if viewErr != nil {
			return viewErr
		}
		if done {
			return nil
		}

		emitted, err := runner.Submit(ctx, move)
		if errors.Is(err, domain.ErrNotPlayerTurn) {
			// A timeout fallback beat us to it. Re-read and move on.
			continue
		}
		if err != nil {
			return err
		}
		logger.Debug("applied move", "player", actor, "action", move.Action, "amount", move.Amount, "events", len(emitted))
	}
}

// pickMove leans heavily on calling and checking, with occasional raises
// and folds, so that hands regularly reach showdown.
func pickMove(game *domain.Game, playerID string, rng *rand.Rand) domain.Move {
	legal := game.LegalMoves(playerID)

	roll := rng.Intn(100)
	switch {
	case roll < 10:
		if raise, ok := findMove(legal, domain.ActionRaise); ok {
			span := raise.MaxAmount - raise.MinAmount + 1
			return domain.Move{PlayerID: playerID, Action: domain.ActionRaise, Amount: raise.MinAmount + rng.Intn(span)}
		}
	case roll < 20:
		return domain.Move{PlayerID: playerID, Action: domain.ActionFold}
	case roll < 22:
		return domain.Move{PlayerID: playerID, Action: domain.ActionAllIn}
	}

	if _, ok := findMove(legal, domain.ActionCheck); ok {
		return domain.Move{PlayerID: playerID, Action: domain.ActionCheck}
	}
	if _, ok := findMove(legal, domain.ActionCall); ok {
		return domain.Move{PlayerID: playerID, Action: domain.ActionCall}
	}
	return game.FallbackMove(playerID)
}

func findMove(moves []domain.LegalMove, action domain.Action) (domain.LegalMove, bool) {
	for _, m := range moves {
		if m.Action == action {
			return m, true
		}
	}
	return domain.LegalMove{}, false
}

// remaining counts the players still holding chips.
func remaining(game *domain.Game) int {
	count := 0
	for _, p := range game.Players() {
		if p.Status != domain.StatusOut {
			count++
		}
	}
	return count
}
