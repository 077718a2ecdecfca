package env

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"silverdollar/internal/config"
	"silverdollar/internal/game/strip"
)

const (
	defaultSquares         = 12
	defaultCoins           = 5
	defaultMaxSquares      = 64
	defaultMaxGamesPerUser = 10
	defaultGameTTL         = 24 * time.Hour
	defaultCleanupInterval = time.Minute
)

type gameFile struct {
	Game gameConfig `yaml:"game"`
}

type gameConfig struct {
	Squares      int           `yaml:"default_squares"`
	Coins        int           `yaml:"default_coins"`
	Max          int           `yaml:"max_squares"`
	MaxGames     int           `yaml:"max_games_per_user"`
	TTL          time.Duration `yaml:"game_ttl"`
	CleanupEvery time.Duration `yaml:"cleanup_interval"`
}

// NewGameConfig - конфиг по умолчанию, 12 клеток и 5 монет
func NewGameConfig() config.GameConfig {
	return &gameConfig{
		Squares:      defaultSquares,
		Coins:        defaultCoins,
		Max:          defaultMaxSquares,
		MaxGames:     defaultMaxGamesPerUser,
		TTL:          defaultGameTTL,
		CleanupEvery: defaultCleanupInterval,
	}
}

// NewGameConfigFromYAML читает секцию game из yaml файла.
// Незаданные поля берутся по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	file := gameFile{Game: *NewGameConfig().(*gameConfig)}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &file.Game
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (g *gameConfig) validate() error {
	if g.Max <= 1 {
		return fmt.Errorf("max_squares must be greater than 1, got %d", g.Max)
	}
	if g.Squares > g.Max {
		return fmt.Errorf("default_squares %d exceeds max_squares %d", g.Squares, g.Max)
	}
	if err := strip.Validate(g.Squares, g.Coins); err != nil {
		return fmt.Errorf("default game: %w", err)
	}
	if g.MaxGames <= 0 {
		return fmt.Errorf("max_games_per_user must be positive, got %d", g.MaxGames)
	}
	if g.TTL <= 0 || g.CleanupEvery <= 0 {
		return fmt.Errorf("game_ttl and cleanup_interval must be positive")
	}
	return nil
}

func (g *gameConfig) DefaultSquares() int {
	return g.Squares
}

func (g *gameConfig) DefaultCoins() int {
	return g.Coins
}

func (g *gameConfig) MaxSquares() int {
	return g.Max
}

func (g *gameConfig) MaxGamesPerUser() int {
	return g.MaxGames
}

func (g *gameConfig) GameTTL() time.Duration {
	return g.TTL
}

func (g *gameConfig) CleanupInterval() time.Duration {
	return g.CleanupEvery
}
