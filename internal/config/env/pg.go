package env

import (
	"silverdollar/internal/config"
)

type pgConfig struct {
	DSNValue string `env:"PG_DSN,required,notEmpty"`
}

func NewPGConfig() (config.PGConfig, error) {
	cfg := &pgConfig{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.DSNValue
}
