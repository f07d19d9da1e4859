// Package session runs one game on its own goroutine and feeds snapshots to a
// frontend. Input and resize requests are queued on channels, so the game is
// only ever touched by the Run loop.
package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

const (
	actionBufferSize = 16
	resizeBufferSize = 1
)

type viewport struct {
	w, h int
}

// Controller owns a single game and drives it at a fixed tick interval.
type Controller struct {
	id     string
	game   registry.Game
	cfg    core.RuntimeConfig
	sink   Sink
	ticker Ticker
	logger *log.Logger

	actions chan core.Action
	resizes chan viewport

	// Loop state, only touched by Run
	running bool

	done     chan struct{}
	doneOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithTicker replaces the wall-clock ticker. Tests use it to step the game by hand.
func WithTicker(t Ticker) Option {
	return func(c *Controller) {
		c.ticker = t
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithID sets the identifier reported in log lines.
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// New creates a controller for game. The game is reset when Run starts.
func New(game registry.Game, cfg core.RuntimeConfig, sink Sink, opts ...Option) *Controller {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	c := &Controller{
		game:    game,
		cfg:     cfg,
		sink:    sink,
		actions: make(chan core.Action, actionBufferSize),
		resizes: make(chan viewport, resizeBufferSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.id != "" {
		c.logger = c.logger.With("session", c.id)
	}
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// Send queues an action for the game. Never blocks; when the queue is full
// the oldest pending action is dropped.
func (c *Controller) Send(a core.Action) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.actions <- a:
	default:
		select {
		case <-c.actions:
		default:
		}
		select {
		case c.actions <- a:
		default:
		}
	}
}

// Resize queues a new viewport size. Only the latest pending size is kept.
func (c *Controller) Resize(w, h int) {
	select {
	case <-c.done:
		return
	default:
	}

	vp := viewport{w: w, h: h}
	select {
	case c.resizes <- vp:
	default:
		select {
		case <-c.resizes:
		default:
		}
		select {
		case c.resizes <- vp:
		default:
		}
	}
}

// Done returns a channel that is closed once Run has returned.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Run resets the game and drives it until ctx is cancelled or an ActionQuit
// arrives. It returns ctx.Err() on cancellation and nil on quit.
func (c *Controller) Run(ctx context.Context) error {
	defer c.doneOnce.Do(func() {
		close(c.done)
	})

	if c.cfg.Seed != 0 {
		c.game.Seed(c.cfg.Seed)
	}
	if c.ticker == nil {
		c.ticker = NewTicker(c.cfg.TickInterval)
	}
	defer c.ticker.Stop()

	c.game.Reset(c.cfg.Grid())
	c.running = true
	c.logger.Debug("session started", "game", c.game.ID(), "cols", c.cfg.Grid().Cols, "rows", c.cfg.Grid().Rows)
	c.publish()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("session cancelled", "score", c.game.State().Score)
			return ctx.Err()

		case <-c.ticker.C():
			quit, restarted := c.drainActions()
			if quit {
				return nil
			}
			// A restart re-arms the ticker; the fresh game waits a full interval.
			if !restarted {
				c.step()
			}

		case a := <-c.actions:
			if quit := c.handleAction(a); quit {
				return nil
			}

		case vp := <-c.resizes:
			c.resize(vp)
		}
	}
}

// step advances the game by one tick and halts the ticker on game over.
func (c *Controller) step() {
	if !c.running {
		return
	}

	res := c.game.Tick()
	if res.State.GameOver {
		c.running = false
		c.ticker.Stop()
		c.logger.Info("game over", "score", res.State.Score, "collision", res.Collision)
	}
	c.publish()
}

// drainActions applies every queued action so input sent before a tick is
// seen by that tick.
func (c *Controller) drainActions() (quit, restarted bool) {
	for {
		select {
		case a := <-c.actions:
			if c.handleAction(a) {
				return true, restarted
			}
			restarted = restarted || a == core.ActionRestart
		default:
			return false, restarted
		}
	}
}

func (c *Controller) handleAction(a core.Action) (quit bool) {
	switch a {
	case core.ActionQuit:
		c.logger.Debug("session quit", "score", c.game.State().Score)
		return true
	case core.ActionRestart:
		c.restart()
	default:
		if d, ok := a.Direction(); ok {
			c.game.SetDirection(d)
		}
	}
	return false
}

// restart starts a new game on the last known viewport and restarts the
// ticker, whether or not the previous game was still running.
func (c *Controller) restart() {
	c.game.Reset(c.cfg.Grid())
	c.ticker.Reset(c.cfg.TickInterval)
	c.running = true
	c.logger.Debug("game restarted")
	c.publish()
}

func (c *Controller) resize(vp viewport) {
	c.cfg.ViewportW = vp.w
	c.cfg.ViewportH = vp.h
	grid := c.cfg.Grid()
	c.game.Resize(grid)

	// The reset policy may have started a fresh game.
	if !c.running && !c.game.State().GameOver {
		c.running = true
		c.ticker.Reset(c.cfg.TickInterval)
	}
	c.logger.Debug("viewport resized", "width", vp.w, "height", vp.h, "cols", grid.Cols, "rows", grid.Rows)
	c.publish()
}

func (c *Controller) publish() {
	if c.sink != nil {
		c.sink.Publish(c.game.Snapshot())
	}
}
