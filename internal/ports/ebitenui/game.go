package ebitenui

import (
	"memorygame/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

type scene interface {
	Update(g *Game) error
	Draw(g *Game, screen *ebiten.Image)
}

// Game implements ebiten.Game. The active scene follows the director's flow.
type Game struct {
	ctx      *AppContext
	director *app.Director
	scene    scene
}

func NewGame(ctx *AppContext) *Game {
	g := &Game{ctx: ctx}
	g.director = app.NewDirector(app.DirectorConfig{
		Service:    ctx.Service,
		Opponent:   ctx.Opponent,
		Identities: ctx.Identities,
		Sound:      ctx.Sound,
		Logger:     ctx.Logger,
	}, g.enter)
	g.scene = newMenuScene(ctx.Config.Window.Width)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update(g)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(lightBlue)
	g.scene.Draw(g, screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.ctx.Config.Window.Width, g.ctx.Config.Window.Height
}

func (g *Game) enter(_, to app.Scene) {
	switch to {
	case app.SceneMenu:
		g.scene = newMenuScene(g.ctx.Config.Window.Width)
	case app.SceneSinglePlayer, app.SceneMultiplayer:
		g.scene = &playScene{}
	case app.SceneVictory:
		g.scene = &victoryScene{result: g.director.Result()}
	}
}
