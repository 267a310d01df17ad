package ebitenui

import (
	"image/color"

	"memorygame/internal/domain"
)

var (
	darkBlue    = color.RGBA{R: 0x2f, G: 0x00, B: 0xaa, A: 0xff}
	black       = color.RGBA{A: 0xff}
	lightBlue   = color.RGBA{R: 0x9c, G: 0xf7, B: 0xff, A: 0xff}
	red         = color.RGBA{R: 0xff, A: 0xff}
	lightPurple = color.RGBA{R: 0xd8, G: 0xc3, B: 0xff, A: 0xff}
)

const (
	sampleRate = 44100

	titleSize  = 80
	bannerSize = 40
	scoreSize  = 30

	resultWidth  = 440
	resultHeight = 200
)

// sideColor is the ink used for everything belonging to a side.
func sideColor(s domain.Side) color.Color {
	if s == domain.SidePlayer {
		return darkBlue
	}
	return red
}
