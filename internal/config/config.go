package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Load загружает .env. Отсутствие файла не ошибка
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type GameConfig interface {
	DefaultSquares() int
	DefaultCoins() int
	MaxSquares() int
	MaxGamesPerUser() int
	GameTTL() time.Duration
	CleanupInterval() time.Duration
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LogConfig interface {
	Level() slog.Level
	JSONFile() string
	Journal() bool
}
