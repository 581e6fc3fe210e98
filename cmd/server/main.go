package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/api"
	"github.com/pdatalab/tripmatch-backend-go/internal/config"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	router := api.SetupRouter(cfg, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
