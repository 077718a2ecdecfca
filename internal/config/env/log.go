package env

import (
	"fmt"
	"log/slog"

	"silverdollar/internal/config"
)

type logEnv struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	JSONFile string `env:"LOG_JSON_FILE"`
	Journal  bool   `env:"LOG_JOURNAL" envDefault:"false"`
}

type logConfig struct {
	level    slog.Level
	jsonFile string
	journal  bool
}

func NewLogConfig() (config.LogConfig, error) {
	raw := logEnv{}
	if err := parse(&raw); err != nil {
		return nil, err
	}

	cfg := &logConfig{
		jsonFile: raw.JSONFile,
		journal:  raw.Journal,
	}
	if err := cfg.level.UnmarshalText([]byte(raw.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", raw.Level, err)
	}

	return cfg, nil
}

func (cfg *logConfig) Level() slog.Level {
	return cfg.level
}

func (cfg *logConfig) JSONFile() string {
	return cfg.jsonFile
}

func (cfg *logConfig) Journal() bool {
	return cfg.journal
}
