package ebitenui

import (
	"image"

	"memorygame/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawCard(dst *ebiten.Image, c *domain.Card, face *ebiten.Image) {
	x, y := float32(c.Bounds.Min.X), float32(c.Bounds.Min.Y)
	w, h := float32(c.Bounds.Dx()), float32(c.Bounds.Dy())

	if c.Flipped {
		if face != nil {
			drawImageIn(dst, face, c.Bounds)
		}
		vector.StrokeRect(dst, x, y, w, h, 2, darkBlue, true)
		return
	}
	vector.DrawFilledRect(dst, x, y, w, h, darkBlue, true)
	vector.StrokeRect(dst, x, y, w, h, 4, black, true)
}

func drawBoard(dst *ebiten.Image, b *domain.Board, faces map[string]*ebiten.Image) {
	for _, c := range b.Cards {
		drawCard(dst, c, faces[c.Identity])
	}
}

// drawImageIn scales img to fill r.
func drawImageIn(dst, img *ebiten.Image, r image.Rectangle) {
	src := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(src.Dx()), float64(r.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
