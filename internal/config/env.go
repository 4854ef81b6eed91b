package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from the process environment.
type Env struct {
	ConfigPath string `env:"RTS_CONFIG"`
	LogLevel   string `env:"RTS_LOG_LEVEL"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Override applies non-empty environment settings on top of c.
func (e Env) Override(c *Config) {
	if e.LogLevel != "" {
		c.Log.Level = e.LogLevel
	}
}
