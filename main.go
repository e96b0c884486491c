// main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"todostarter/api"
	"todostarter/config"
	"todostarter/domain"
	"todostarter/store"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	seed := domain.SampleTodos()
	if cfg.SeedFile != "" {
		seed, err = store.LoadSeed(cfg.SeedFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("failed to load seed file")
		}
	}

	st := store.New(seed)
	app := api.NewServer(st, logger).App()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		logger.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logger.Info().Str("addr", cfg.Addr).Int("todos", len(seed)).Msg("server starting")
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
