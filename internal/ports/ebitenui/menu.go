package ebitenui

import (
	"image"

	"memorygame/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	buttonWidth  = 300
	buttonHeight = 60
)

type menuButton struct {
	button
	mode app.Mode
}

type menuScene struct {
	width   int
	buttons []menuButton
}

func newMenuScene(width int) *menuScene {
	left := (width - buttonWidth) / 2
	return &menuScene{
		width: width,
		buttons: []menuButton{
			{
				button: button{label: "Singleplayer", rect: image.Rect(left, 260, left+buttonWidth, 260+buttonHeight), bg: darkBlue, fg: lightPurple},
				mode:   app.ModeSinglePlayer,
			},
			{
				button: button{label: "Multiplayer", rect: image.Rect(left, 360, left+buttonWidth, 360+buttonHeight), bg: red, fg: lightPurple},
				mode:   app.ModeMultiplayer,
			},
		},
	}
}

func (m *menuScene) Update(g *Game) error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	pt := image.Pt(ebiten.CursorPosition())
	for _, b := range m.buttons {
		if b.hit(pt) {
			return g.director.Start(b.mode)
		}
	}
	return nil
}

func (m *menuScene) Draw(g *Game, screen *ebiten.Image) {
	center := float64(m.width) / 2
	g.ctx.fonts.draw(screen, g.ctx.Config.Window.Title, titleSize*0.75, center, 60, text.AlignCenter, darkBlue)
	g.ctx.fonts.draw(screen, "Choose a game mode", scoreSize, center, 170, text.AlignCenter, black)
	for _, b := range m.buttons {
		b.draw(screen, g.ctx.fonts)
	}
}
