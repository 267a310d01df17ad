package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"memorygame/internal/app"
	"memorygame/internal/assets"
	"memorygame/internal/bot"
	"memorygame/internal/config"
	"memorygame/internal/domain"
	"memorygame/internal/ports/ebitenui"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MEMORY_CONFIG"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Set up logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	slog.Info("starting memory game", "seed", seed, "deal", cfg.Rules.Deal)

	// Load assets
	pack, err := assets.Load(afero.NewOsFs(), assets.Paths{
		Dir:           cfg.Assets.Dir,
		IdentitiesDir: cfg.Assets.IdentitiesDir,
		WinImage:      cfg.Assets.WinImage,
		LoseImage:     cfg.Assets.LoseImage,
		TieImage:      cfg.Assets.TieImage,
		Sound:         cfg.Assets.Sound,
	})
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}
	slog.Info("assets loaded", "identities", len(pack.Faces))

	rules := rulesFromConfig(cfg, 2*len(pack.Faces))
	if rules.Cramped() {
		slog.Warn("cards too small for the window; use fewer identities or a larger window",
			"identities", len(pack.Faces),
			"card_size", rules.SinglePlayerLayout.CardSize,
			"multiplayer_card_size", rules.MultiplayerLayouts[0].CardSize,
			"min_card_size", app.MinPlayableCardSize)
	}
	svc := app.NewService(rng, clock.New(), rules)
	opponent, err := bot.NewAgent(cfg.Bot.Name, bot.BotLevel(cfg.Bot.Level), rng)
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	ctx, err := ebitenui.NewAppContext(cfg, svc, opponent, pack, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(ebitenui.NewGame(ctx)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}

	slog.Info("window closed")
	return nil
}

func rulesFromConfig(cfg *config.GameConfig, deckSize int) app.Rules {
	rules := app.DefaultRules()
	rules.Deal = domain.DealMode(cfg.Rules.Deal)
	rules.MismatchDelay = cfg.Rules.MismatchDelay
	rules.OpponentDelay = cfg.Rules.OpponentDelay
	rules.SinglePlayerRepeatOnMatch = cfg.Rules.SinglePlayerRepeatOnMatch
	rules.MultiplayerRepeatOnMatch = cfg.Rules.MultiplayerRepeatOnMatch
	rules.SinglePlayerLayout, rules.MultiplayerLayouts = app.WindowLayouts(cfg.Window.Width, cfg.Window.Height, deckSize)
	return rules
}
