package ebitenui

import (
	"fmt"
	"image"

	"memorygame/internal/app"
	"memorygame/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// playScene renders a running session in either mode.
type playScene struct{}

func (p *playScene) Update(g *Game) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return g.director.Quit()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.director.Click(image.Pt(ebiten.CursorPosition()))
	}
	return g.director.Update()
}

func (p *playScene) Draw(g *Game, screen *ebiten.Image) {
	s := g.director.Session()
	if s == nil {
		return
	}
	f := g.ctx.fonts
	width := float64(g.ctx.Config.Window.Width)

	if s.Mode() == app.ModeMultiplayer {
		f.draw(screen, fmt.Sprintf("Player %d's turn", int(s.Turn())+1), bannerSize, width/2, 20, text.AlignCenter, sideColor(s.Turn()))
		f.draw(screen, fmt.Sprintf("Player1 Score: %d", s.Score(domain.SidePlayer1)), scoreSize, width/4, 90, text.AlignCenter, sideColor(domain.SidePlayer1))
		f.draw(screen, fmt.Sprintf("Player2 Score: %d", s.Score(domain.SidePlayer2)), scoreSize, width*3/4, 90, text.AlignCenter, sideColor(domain.SidePlayer2))
	} else {
		banner := "Your turn"
		if s.Turn() == domain.SideOpponent {
			banner = fmt.Sprintf("%s's turn", s.Opponent().Name)
		}
		f.draw(screen, banner, bannerSize, width/2, 20, text.AlignCenter, sideColor(s.Turn()))
		f.draw(screen, fmt.Sprintf("Player Score: %d", s.Score(domain.SidePlayer)), scoreSize, 30, 40, text.AlignStart, sideColor(domain.SidePlayer))
		f.draw(screen, fmt.Sprintf("%s Score: %d", s.Opponent().Name, s.Score(domain.SideOpponent)), scoreSize, width-30, 40, text.AlignEnd, sideColor(domain.SideOpponent))
	}

	for _, b := range s.Boards() {
		drawBoard(screen, b, g.ctx.Faces)
	}
	f.draw(screen, "Press q to quit to the menu", scoreSize*0.6, width/2, float64(g.ctx.Config.Window.Height)-35, text.AlignCenter, black)
}
