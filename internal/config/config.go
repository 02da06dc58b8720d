package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"harmony-match"`
	AppEnv          string        `env:"APP_ENV" envDefault:"production"`
	MinBirthYear    int           `env:"MIN_BIRTH_YEAR" envDefault:"1920"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"60"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
}

// IsDevelopment indica si el logger debe usar el modo de desarrollo.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
