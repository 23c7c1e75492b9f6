package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/core"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/render"
)

// RunTerminal plays g on an initialized tcell screen until quit or ctx is done
// The caller owns the screen; Fini after return also ends the event poller
func RunTerminal(ctx context.Context, g *Game, screen tcell.Screen, table *input.KeyTable, interval time.Duration) error {
	r := render.NewTerminalRenderer(screen)
	sched := engine.NewTickerScheduler(interval, nil)

	g.Drive(sched, func() {
		r.SetMuted(g.Muted())
		r.Render(g.Frame())
	})

	core.Go(func() { pollEvents(screen, table, g.Keys()) })

	return sched.Run(ctx)
}

// pollEvents feeds key presses into keys until the screen is finalized
func pollEvents(screen tcell.Screen, table *input.KeyTable, keys *input.Keys) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if a, ok := table.Lookup(ev); ok {
				keys.Press(a)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
