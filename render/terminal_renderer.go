package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-pong/game"
)

const (
	runePaddle = '█'
	runeBall   = '●'
	runeNet    = '│'

	// Score row on top, status row at the bottom
	headerRows = 1
	footerRows = 1

	minWidth  = 20
	minHeight = 6

	// Absorbs float error so exact edges don't spill into the next cell
	spanEpsilon = 1e-9

	StartHint = "SPACE serve · W/S ↑/↓ move · R restart · M mute · Q quit"
	smallHint = "terminal too small"
)

// TerminalRenderer scales the playfield onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	muted  bool
}

// NewTerminalRenderer creates a renderer drawing to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetMuted toggles the mute marker in the status row
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// Render draws f and shows the screen
func (r *TerminalRenderer) Render(f game.Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	r.screen.Fill(' ', defaultStyle)

	width, height := r.screen.Size()
	if width < minWidth || height < minHeight {
		r.drawCentered(height/2, smallHint, defaultStyle)
		r.screen.Show()
		return
	}

	v := newViewport(f, width, height)

	r.drawNet(v, defaultStyle.Foreground(RgbNet))
	r.drawRect(v, f.Player1, runePaddle, defaultStyle.Foreground(RgbPaddle1))
	r.drawRect(v, f.Player2, runePaddle, defaultStyle.Foreground(RgbPaddle2))
	r.drawRect(v, f.Ball, runeBall, defaultStyle.Foreground(RgbBall))
	r.drawScores(f.Score, width, defaultStyle.Foreground(RgbScore).Bold(true))
	r.drawStatus(f, width, height, defaultStyle)

	r.screen.Show()
}

// viewport maps field coordinates to cells of the play area
type viewport struct {
	top        int
	cols, rows int
	sx, sy     float64
}

func newViewport(f game.Frame, width, height int) viewport {
	rows := height - headerRows - footerRows
	return viewport{
		top:  headerRows,
		cols: width,
		rows: rows,
		sx:   float64(width) / f.FieldWidth,
		sy:   float64(rows) / f.FieldHeight,
	}
}

// cellSpan converts [pos, pos+size) to an inclusive cell range, at least one cell wide
func cellSpan(pos, size, scale float64, limit int) (int, int) {
	lo := int(math.Floor(pos*scale + spanEpsilon))
	hi := int(math.Ceil((pos+size)*scale-spanEpsilon)) - 1
	if hi < lo {
		hi = lo
	}
	lo = max(lo, 0)
	hi = min(hi, limit-1)
	return lo, hi
}

func (r *TerminalRenderer) drawRect(v viewport, rect game.Rect, ch rune, style tcell.Style) {
	c0, c1 := cellSpan(rect.X, rect.W, v.sx, v.cols)
	r0, r1 := cellSpan(rect.Y, rect.H, v.sy, v.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, v.top+row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawNet(v viewport, style tcell.Style) {
	col := v.cols / 2
	for row := 0; row < v.rows; row += 2 {
		r.screen.SetContent(col, v.top+row, runeNet, nil, style)
	}
}

func (r *TerminalRenderer) drawScores(s game.Score, width int, style tcell.Style) {
	r.drawText(width/4, 0, fmt.Sprintf("%d", s.Player1), style)
	r.drawText(3*width/4, 0, fmt.Sprintf("%d", s.Player2), style)
}

func (r *TerminalRenderer) drawStatus(f game.Frame, width, height int, style tcell.Style) {
	row := height - 1
	status := style.Foreground(RgbStatusBar)

	id := f.SessionID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	r.drawTextAt(0, row, id, status)

	right := f.State.String()
	if r.muted {
		right = "muted " + right
	}
	r.drawTextAt(width-runewidth.StringWidth(right), row, right, status)

	if f.State == game.StateStart {
		r.drawCentered(row, StartHint, style.Foreground(RgbHint))
	}
}

// drawText centers s on column cx
func (r *TerminalRenderer) drawText(cx, y int, s string, style tcell.Style) {
	r.drawTextAt(cx-runewidth.StringWidth(s)/2, y, s, style)
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	width, _ := r.screen.Size()
	if w := runewidth.StringWidth(s); w > width {
		s = runewidth.Truncate(s, width, "")
	}
	r.drawText(width/2, y, s, style)
}

func (r *TerminalRenderer) drawTextAt(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
