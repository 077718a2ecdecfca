package env

import (
	"fmt"
	"time"

	"silverdollar/internal/config"
)

type jwtConfig struct {
	AccessTokenSecret string        `env:"ACCESS_TOKEN,required,notEmpty"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
	RefreshTokenTTL   time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"720h"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	cfg := &jwtConfig{}
	if err := parse(cfg); err != nil {
		return nil, err
	}

	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid access token duration: %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid refresh token duration: %s", cfg.RefreshTokenTTL)
	}

	return cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenSecret)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.RefreshTokenTTL
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
