package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/term-pong/input"
)

// DefaultBindings mirrors the terminal key table
func DefaultBindings() map[ebiten.Key]input.Action {
	return map[ebiten.Key]input.Action{
		ebiten.KeyW:         input.ActionPlayer1Up,
		ebiten.KeyS:         input.ActionPlayer1Down,
		ebiten.KeyArrowUp:   input.ActionPlayer2Up,
		ebiten.KeyArrowDown: input.ActionPlayer2Down,
		ebiten.KeySpace:     input.ActionConfirm,
		ebiten.KeyEnter:     input.ActionConfirm,
		ebiten.KeyR:         input.ActionRestart,
		ebiten.KeyM:         input.ActionMute,
		ebiten.KeyEscape:    input.ActionQuit,
		ebiten.KeyQ:         input.ActionQuit,
	}
}

// pollKeys mirrors ebiten's key state into keys
// Windows report real releases, so keys should be built without a hold timeout
func pollKeys(bindings map[ebiten.Key]input.Action, keys *input.Keys) {
	for key, action := range bindings {
		switch {
		case ebiten.IsKeyPressed(key):
			keys.Press(action)
		case inpututil.IsKeyJustReleased(key):
			keys.Release(action)
		}
	}
}
