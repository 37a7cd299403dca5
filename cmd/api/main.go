package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthtrack/symptom-tracker/internal/api"
	"github.com/healthtrack/symptom-tracker/internal/infrastructure/config"
	mongorepo "github.com/healthtrack/symptom-tracker/internal/infrastructure/db/mongo"
	"github.com/healthtrack/symptom-tracker/internal/infrastructure/llm"
	"github.com/healthtrack/symptom-tracker/pkg/logger"
)

// @title        Symptom Tracker API
// @version      1.0
// @description  Personal health tracking service: symptoms, medications and narrative reports.
// @BasePath     /api
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if cfg.Groq.APIKey == "" {
		log.Warn().Msg("GROQ_API_KEY not set, report generation will fail")
	}
	generator := llm.NewGroqGenerator(cfg.Groq.APIKey, cfg.Groq.Model, log)

	e := api.NewRouter(db, generator, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewSymptomRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewMedicationRepository(db).EnsureIndexes(ctx)
}
