// config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the environment with
// in-code defaults. A .env file in the working directory is honored.
type Config struct {
	Addr     string
	SeedFile string
	LogLevel string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:     ":3333",
		LogLevel: "info",
	}

	if v := os.Getenv("TODO_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TODO_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
