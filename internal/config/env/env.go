package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parse заполняет структуру из переменных окружения по тегам `env`
func parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
