package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MEMORY_RULES_MISMATCH_DELAY.
const EnvPrefix = "MEMORY"

var ErrInvalidConfig = errors.New("invalid config")

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type AssetConfig struct {
	Dir           string `mapstructure:"dir"`
	IdentitiesDir string `mapstructure:"identities_dir"`
	WinImage      string `mapstructure:"win_image"`
	LoseImage     string `mapstructure:"lose_image"`
	TieImage      string `mapstructure:"tie_image"`
	Sound         string `mapstructure:"sound"`
}

type RulesConfig struct {
	MismatchDelay             time.Duration `mapstructure:"mismatch_delay"`
	OpponentDelay             time.Duration `mapstructure:"opponent_delay"`
	Deal                      string        `mapstructure:"deal"`
	SinglePlayerRepeatOnMatch bool          `mapstructure:"singleplayer_repeat_on_match"`
	MultiplayerRepeatOnMatch  bool          `mapstructure:"multiplayer_repeat_on_match"`
}

type BotConfig struct {
	Level string `mapstructure:"level"`
	Name  string `mapstructure:"name"`
}

// GameConfig holds all application configuration.
type GameConfig struct {
	LogLevel string       `mapstructure:"log_level"`
	Seed     int64        `mapstructure:"seed"` // 0 seeds from the clock
	Window   WindowConfig `mapstructure:"window"`
	Assets   AssetConfig  `mapstructure:"assets"`
	Rules    RulesConfig  `mapstructure:"rules"`
	Bot      BotConfig    `mapstructure:"bot"`
}

var defaults = map[string]any{
	"log_level":                          "info",
	"seed":                               int64(0),
	"window.width":                       1100,
	"window.height":                      570,
	"window.title":                       "Animals Memory Game",
	"assets.dir":                         ".",
	"assets.identities_dir":              "animals",
	"assets.win_image":                   "congrats.png",
	"assets.lose_image":                  "you_lost.png",
	"assets.tie_image":                   "tie.png",
	"assets.sound":                       "collect.wav",
	"rules.mismatch_delay":               time.Second,
	"rules.opponent_delay":               500 * time.Millisecond,
	"rules.deal":                         "permutations",
	"rules.singleplayer_repeat_on_match": true,
	"rules.multiplayer_repeat_on_match":  false,
	"bot.level":                          "random",
	"bot.name":                           "Computer",
}

// Load reads the optional config file at path, then applies MEMORY_* environment overrides.
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Rules.MismatchDelay < 0 || c.Rules.OpponentDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	switch c.Rules.Deal {
	case "permutations", "shuffle":
	default:
		return fmt.Errorf("%w: unknown deal mode %q", ErrInvalidConfig, c.Rules.Deal)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Assets.IdentitiesDir == "" {
		return fmt.Errorf("%w: assets.identities_dir is required", ErrInvalidConfig)
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c *GameConfig) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
	}
}
