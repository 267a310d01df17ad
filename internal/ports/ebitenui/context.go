// Package ebitenui is the ebiten window around the memory game: scenes,
// input, drawing and sound.
package ebitenui

import (
	"fmt"
	"log/slog"

	"memorygame/internal/app"
	"memorygame/internal/assets"
	"memorygame/internal/bot"
	"memorygame/internal/config"
	"memorygame/internal/ports"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppContext bundles everything the scenes share.
type AppContext struct {
	Config     *config.GameConfig
	Service    *app.Service
	Opponent   *bot.Agent
	Identities []string
	Faces      map[string]*ebiten.Image
	Banners    map[app.Banner]*ebiten.Image
	Sound      ports.SoundPort
	Logger     *slog.Logger

	fonts *fonts
}

// NewAppContext converts the decoded assets into GPU images and prepares audio.
func NewAppContext(cfg *config.GameConfig, svc *app.Service, opponent *bot.Agent, pack *assets.Pack, logger *slog.Logger) (*AppContext, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := newFonts()
	if err != nil {
		return nil, err
	}

	identities := pack.Identities()
	faces := make(map[string]*ebiten.Image, len(identities))
	for _, id := range identities {
		img, ok := pack.Face(id)
		if !ok {
			return nil, fmt.Errorf("no picture for identity %q", id)
		}
		faces[id] = ebiten.NewImageFromImage(img)
	}

	var sound ports.SoundPort = ports.NopSound{}
	if len(pack.Sound) > 0 {
		ws, err := newWavSound(pack.Sound)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare match sound: %w", err)
		}
		sound = ws
	}

	return &AppContext{
		Config:     cfg,
		Service:    svc,
		Opponent:   opponent,
		Identities: identities,
		Faces:      faces,
		Banners: map[app.Banner]*ebiten.Image{
			app.BannerWin:  ebiten.NewImageFromImage(pack.Win),
			app.BannerLose: ebiten.NewImageFromImage(pack.Lose),
			app.BannerTie:  ebiten.NewImageFromImage(pack.Tie),
		},
		Sound:  sound,
		Logger: logger,
		fonts:  f,
	}, nil
}
