package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := writeFile(t, `
game:
  default_squares: 20
  default_coins: 7
  max_squares: 40
  max_games_per_user: 3
  game_ttl: 2h
  cleanup_interval: 30s
`)

	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.DefaultSquares())
	assert.Equal(t, 7, cfg.DefaultCoins())
	assert.Equal(t, 40, cfg.MaxSquares())
	assert.Equal(t, 3, cfg.MaxGamesPerUser())
	assert.Equal(t, 2*time.Hour, cfg.GameTTL())
	assert.Equal(t, 30*time.Second, cfg.CleanupInterval())
}

func TestNewGameConfigFromYAMLDefaults(t *testing.T) {
	path := writeFile(t, "game:\n  max_games_per_user: 2\n")

	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.DefaultSquares())
	assert.Equal(t, 5, cfg.DefaultCoins())
	assert.Equal(t, 2, cfg.MaxGamesPerUser())
}

func TestNewGameConfigFromYAMLRejectsInvalidDefaults(t *testing.T) {
	path := writeFile(t, "game:\n  default_squares: 5\n  default_coins: 5\n")

	_, err := NewGameConfigFromYAML(path)
	assert.Error(t, err)

	_, err = NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("ACCESS_TOKEN_DURATION", "5m")
	t.Setenv("REFRESH_TOKEN_DURATION", "1h")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenDuration())
	assert.Equal(t, time.Hour, cfg.RefreshTokenDuration())
}

func TestNewJWTConfigRequiresSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "")
	os.Unsetenv("ACCESS_TOKEN")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.False(t, cfg.Journal())

	t.Setenv("LOG_LEVEL", "loud")
	_, err = NewLogConfig()
	assert.Error(t, err)
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost/db")

	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/db", cfg.DSN())
}
