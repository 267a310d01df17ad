package ebitenui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type button struct {
	label  string
	rect   image.Rectangle
	bg, fg color.Color
}

func (b button) hit(pt image.Point) bool {
	return pt.In(b.rect)
}

func (b button) draw(dst *ebiten.Image, f *fonts) {
	r := b.rect
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), b.bg, false)
	size := float64(r.Dy()) / 2
	f.draw(dst, b.label, size, float64(r.Min.X+r.Dx()/2), float64(r.Min.Y)+float64(r.Dy())/4, text.AlignCenter, b.fg)
}
