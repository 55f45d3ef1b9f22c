package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/practicehub/feedback-api/internal/infrastructure/clients/postgres"
	"github.com/practicehub/feedback-api/internal/infrastructure/observability"
	"github.com/practicehub/feedback-api/pkg/config"
)

const feedbackSchema = `
CREATE TABLE IF NOT EXISTS feedback_entries (
	id           BIGSERIAL PRIMARY KEY,
	name         VARCHAR(100) NOT NULL,
	email        VARCHAR(200),
	phone        VARCHAR(50) NOT NULL,
	organization VARCHAR(200),
	message      TEXT NOT NULL,
	source_url   VARCHAR(500),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	if _, err := pgClient.DB().ExecContext(context.Background(), feedbackSchema); err != nil {
		log.Fatal().Err(err).Msg("failed to apply feedback schema")
	}

	log.Info().Msg("feedback schema is up to date")
}
