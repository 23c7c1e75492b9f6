package app

import (
	"context"
	"time"

	"github.com/lixenwraith/term-pong/engine"
)

// HeadlessOptions configures a run without screen or wall clock
type HeadlessOptions struct {
	Step      time.Duration
	Frames    uint64 // 0 runs until quit or cancellation
	AutoServe bool
}

// RunHeadless steps g on a fixed timestep as fast as possible
func RunHeadless(ctx context.Context, g *Game, opts HeadlessOptions) error {
	sched := engine.NewFixedStepScheduler(opts.Step, opts.Frames)
	g.SetAutoServe(opts.AutoServe)
	d := g.Drive(sched, nil)

	err := sched.Run(ctx)

	f := g.Frame()
	g.logger.Info("headless run finished",
		"session", f.SessionID,
		"frames", d.Frames(),
		"player1", f.Score.Player1,
		"player2", f.Score.Player2,
	)
	return err
}
