package ebitenui

import (
	"image"

	"memorygame/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type victoryScene struct {
	result app.Result
}

func (v *victoryScene) Update(g *Game) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return g.director.Back()
	}
	return nil
}

func (v *victoryScene) Draw(g *Game, screen *ebiten.Image) {
	f := g.ctx.fonts
	width := g.ctx.Config.Window.Width
	center := float64(width) / 2

	f.draw(screen, v.result.Headline(), bannerSize, center, 20, text.AlignCenter, darkBlue)

	if img := g.ctx.Banners[v.result.Banner()]; img != nil {
		left := (width - resultWidth) / 2
		drawImageIn(screen, img, image.Rect(left, 80, left+resultWidth, 80+resultHeight))
	}

	y := float64(80 + resultHeight + 20)
	for _, line := range v.result.ScoreLines() {
		f.draw(screen, line.Text, scoreSize, center, y, text.AlignCenter, sideColor(line.Side))
		y += scoreSize + 15
	}
	f.draw(screen, "Press m to return to the menu", scoreSize*0.8, center, y+20, text.AlignCenter, black)
}
