package render

import "github.com/lixenwraith/term-pong/game"

// Renderer draws one frame snapshot
type Renderer interface {
	Render(f game.Frame)
}
