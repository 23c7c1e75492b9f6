// Package window runs a pong game in a desktop window through ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/term-pong/app"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/game"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/render"
)

const (
	netDash  = 20
	netWidth = 4
	textRow  = 16
)

// Host adapts app.Game to ebiten.Game
// ebiten's Update acts as the frame scheduler; Draw paints the last captured frame
type Host struct {
	game     *app.Game
	sched    *engine.ManualScheduler
	bindings map[ebiten.Key]input.Action
	start    time.Time
	frame    game.Frame
	muted    bool
}

// NewHost creates a host and starts g's driver on it
func NewHost(g *app.Game) *Host {
	h := &Host{
		game:     g,
		sched:    engine.NewManualScheduler(),
		bindings: DefaultBindings(),
		start:    time.Now(),
		frame:    g.Frame(),
	}
	g.Drive(h.sched, h.capture)
	return h
}

func (h *Host) capture() {
	h.frame = h.game.Frame()
	h.muted = h.game.Muted()
}

// Update implements ebiten.Game
func (h *Host) Update() error {
	pollKeys(h.bindings, h.game.Keys())

	if err := h.sched.Fire(time.Since(h.start)); errors.Is(err, engine.ErrNoCallback) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (h *Host) Draw(screen *ebiten.Image) {
	f := h.frame
	screen.Fill(render.RGBA(render.RgbBackground))

	net := render.RGBA(render.RgbNet)
	for y := 0.0; y < f.FieldHeight; y += 2 * netDash {
		vector.DrawFilledRect(screen, float32(f.FieldWidth/2-netWidth/2), float32(y), netWidth, netDash, net, false)
	}

	fillRect(screen, f.Player1, render.RGBA(render.RgbPaddle1))
	fillRect(screen, f.Player2, render.RGBA(render.RgbPaddle2))
	fillRect(screen, f.Ball, render.RGBA(render.RgbBall))

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", f.Score.Player1), int(f.FieldWidth/4), textRow)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", f.Score.Player2), int(3*f.FieldWidth/4), textRow)

	status := f.State.String()
	if h.muted {
		status = "muted " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 8, int(f.FieldHeight)-textRow-8)
	if f.State == game.StateStart {
		ebitenutil.DebugPrintAt(screen, render.StartHint, int(f.FieldWidth/2)-180, int(f.FieldHeight)-textRow-8)
	}
}

// Layout implements ebiten.Game; the logical screen is the playfield and ebiten scales it
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(h.frame.FieldWidth), int(h.frame.FieldHeight)
}

func fillRect(dst *ebiten.Image, r game.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Run opens a window and blocks until quit, window close, or ctx is done
func Run(ctx context.Context, g *app.Game, title string) error {
	h := NewHost(g)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(h.frame.FieldWidth), int(h.frame.FieldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	stop := context.AfterFunc(ctx, g.Quit)
	defer stop()

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return ctx.Err()
}
