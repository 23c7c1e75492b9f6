// Package app binds a pong session to its hosts: key state, audio and the frame driver.
package app

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/game"
	"github.com/lixenwraith/term-pong/input"
)

// Game is the per-frame step shared by every host
type Game struct {
	session *game.Session
	keys    *input.Keys
	player  audio.Player
	logger  *slog.Logger

	autoServe bool
	stop      func()
	quit      atomic.Bool
}

// NewGame builds a session wired to keys and player
// A nil player is replaced by audio.Silent
func NewGame(cfg config.Config, keys *input.Keys, player audio.Player, logger *slog.Logger, opts ...game.Option) (*Game, error) {
	if player == nil {
		player = &audio.Silent{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	base := []game.Option{game.WithCues(player), game.WithLogger(logger)}
	s, err := game.NewSession(cfg, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	return &Game{
		session: s,
		keys:    keys,
		player:  player,
		logger:  logger,
	}, nil
}

// SetAutoServe makes Step press confirm whenever the session waits in Start
func (g *Game) SetAutoServe(on bool) {
	g.autoServe = on
}

// Drive creates a driver on scheduler running Step then render, and starts it
// Quit stops the returned driver
func (g *Game) Drive(scheduler engine.FrameScheduler, render engine.RenderFunc) *engine.Driver {
	d := engine.NewDriver(scheduler, g.Step, render)
	g.stop = d.Stop
	if g.quit.Load() {
		return d
	}
	d.Start()
	return d
}

// Step handles host actions then advances the session by dt seconds
func (g *Game) Step(dt float64) {
	g.keys.Refresh()

	if input.Consume(g.keys, input.ActionQuit) {
		g.logger.Info("quit key", "session", g.session.ID)
		g.Quit()
		return
	}
	if input.Consume(g.keys, input.ActionMute) {
		g.logger.Info("mute toggled", "session", g.session.ID, "muted", g.player.ToggleMute())
	}
	if g.autoServe && g.session.State == game.StateStart {
		g.keys.Release(input.ActionConfirm)
		g.keys.Press(input.ActionConfirm)
	}

	g.session.Update(dt, g.keys)
}

// Quit stops the driver after the frame in flight; repeated calls are no-ops
// Safe from any goroutine, so it must not touch session state
func (g *Game) Quit() {
	if !g.quit.CompareAndSwap(false, true) {
		return
	}
	g.logger.Info("quit requested")
	if g.stop != nil {
		g.stop()
	}
}

// Quitting reports whether Quit has been called
func (g *Game) Quitting() bool {
	return g.quit.Load()
}

func (g *Game) Frame() game.Frame {
	return g.session.Frame()
}

func (g *Game) Session() *game.Session {
	return g.session
}

func (g *Game) Keys() *input.Keys {
	return g.keys
}

func (g *Game) Muted() bool {
	return g.player.Muted()
}
