package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Session struct {
		Secret     string `env:"SECRET,required"`
		CookieName string `env:"COOKIE_NAME" envDefault:"__shift_planner_session"`
		TTL        int    `env:"TTL" envDefault:"28800"` // 8 hours
	} `envPrefix:"SESSION_"`
	Redis struct {
		Enabled        bool   `env:"ENABLED" envDefault:"false"`
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
	} `envPrefix:"REDIS_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// return only the first error to keep the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
