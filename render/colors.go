package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette entries are authored as hex and converted once at init
var (
	RgbBackground = hexColor("#1a1b26") // Tokyo Night background
	RgbForeground = hexColor("#c0caf5")
	RgbPaddle1    = hexColor("#7aa2f7") // Blue
	RgbPaddle2    = hexColor("#f7768e") // Red
	RgbBall       = hexColor("#e0af68") // Amber
	RgbScore      = hexColor("#ffffff")
	RgbHint       = hexColor("#9ece6a") // Green
	RgbStatusBar  = hexColor("#565f89")

	// Net sits a third of the way from background to foreground
	RgbNet = blend("#1a1b26", "#c0caf5", 0.33)
)

func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend mixes two hex colors in Lab space, t in [0, 1]
func blend(from, to string, t float64) tcell.Color {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return tcell.ColorDefault
	}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// RGBA converts a palette entry for surfaces that are not terminals
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
