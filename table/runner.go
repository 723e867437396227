package table

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lazharichir/holdem/domain"
	"github.com/lazharichir/holdem/domain/events"
)

// Runner serializes all access to one game. Moves from any goroutine
// are funneled through a single loop, so the engine itself never needs
// locking. A player who fails to act within the configured timeout has
// a fallback move (check if free, otherwise fold) applied for them.
type Runner struct {
	game       *domain.Game
	logger     *log.Logger
	clock      quartz.Clock
	actTimeout time.Duration

	moves   chan moveRequest
	starts  chan startRequest
	queries chan queryRequest

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type moveRequest struct {
	move  domain.Move
	reply chan moveResult
}

type moveResult struct {
	events []events.Event
	err    error
}

type startRequest struct {
	reply chan error
}

type queryRequest struct {
	fn    func(*domain.Game)
	reply chan struct{}
}

// NewRunner wraps a game in a serializing loop. Pass quartz.NewReal()
// outside of tests. A zero actTimeout disables the timeout entirely.
func NewRunner(game *domain.Game, logger *log.Logger, clock quartz.Clock, actTimeout time.Duration) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		game:       game,
		logger:     logger,
		clock:      clock,
		actTimeout: actTimeout,
		moves:      make(chan moveRequest),
		starts:     make(chan startRequest),
		queries:    make(chan queryRequest),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the loop.
func (r *Runner) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run()
	}()
}

// Stop shuts the loop down and waits for it to finish. Pending submits
// fail with the loop's context error.
func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
}

// StartHand asks the loop to deal a new hand.
func (r *Runner) StartHand(ctx context.Context) error {
	req := startRequest{reply: make(chan error, 1)}
	select {
	case r.starts <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-r.ctx.Done():
		return r.ctx.Err()
	}
	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Query runs fn against the game on the loop goroutine and waits for it
// to complete. Once the runner is started, all reads of game state from
// other goroutines must go through here: the loop may be applying a
// timeout fallback at any moment.
func (r *Runner) Query(ctx context.Context, fn func(*domain.Game)) error {
	req := queryRequest{fn: fn, reply: make(chan struct{})}
	select {
	case r.queries <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-r.ctx.Done():
		return r.ctx.Err()
	}
	select {
	case <-req.reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit applies one move on the loop goroutine and returns the events
// it produced.
func (r *Runner) Submit(ctx context.Context, move domain.Move) ([]events.Event, error) {
	req := moveRequest{move: move, reply: make(chan moveResult, 1)}
	select {
	case r.moves <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.ctx.Done():
		return nil, r.ctx.Err()
	}
	select {
	case result := <-req.reply:
		return result.events, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// run is the loop. The act timer is armed for whoever holds the action
// and kept running across queries and rejected moves, so reading state
// does not grant the actor extra time.
func (r *Runner) run() {
	var timer *quartz.Timer
	var timeoutFired chan struct{}
	armedFor := ""

	disarm := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = nil
		timeoutFired = nil
		armedFor = ""
	}
	defer disarm()

	for {
		if actor := r.currentActor(); actor != armedFor {
			disarm()
			if actor != "" && r.actTimeout > 0 {
				fired := make(chan struct{})
				timer = r.clock.AfterFunc(r.actTimeout, func() {
					close(fired)
				})
				timeoutFired = fired
				armedFor = actor
			}
		}

		select {
		case <-r.ctx.Done():
			return

		case req := <-r.starts:
			req.reply <- r.game.StartHand()

		case req := <-r.queries:
			req.fn(r.game)
			close(req.reply)

		case req := <-r.moves:
			emitted, err := r.game.ApplyMove(req.move)
			if err != nil {
				r.logger.Warn("move rejected",
					"game", r.game.ID,
					"player", req.move.PlayerID,
					"action", req.move.Action,
					"error", err)
			}
			req.reply <- moveResult{events: emitted, err: err}

		case <-timeoutFired:
			actor := armedFor
			disarm()
			fallback := r.game.FallbackMove(actor)
			r.logger.Warn("player timed out, applying fallback move",
				"game", r.game.ID,
				"player", actor,
				"action", fallback.Action)
			if _, err := r.game.ApplyMove(fallback); err != nil {
				r.logger.Error("fallback move failed",
					"game", r.game.ID,
					"player", actor,
					"error", err)
			}
		}
	}
}

// currentActor returns the id of the player holding the action, or ""
// when no decision is pending.
func (r *Runner) currentActor() string {
	s := r.game.State
	if s == nil || s.Finished || s.Action < 0 {
		return ""
	}
	return s.Players[s.Action].ID
}
