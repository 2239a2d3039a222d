package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventbook/server/internal/api"
	"github.com/eventbook/server/internal/config"
	mongostore "github.com/eventbook/server/internal/storage/mongo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)
	logger.Info().Msg("starting eventbook server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongostore.Connect(ctx, cfg.Database.URI)
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("store connection failed")
	}

	repo, err := mongostore.NewRepository(client.Database(cfg.Database.Name))
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("repository init failed")
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		// The pre-insert check still guards registration; log and serve.
		logger.Error().Err(err).Msg("index bootstrap failed")
	}
	cancel()

	handler, err := api.NewRouter(cfg, logger, repo)
	if err != nil {
		logger.Fatal().Err(err).Msg("router init failed")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	shutdown(server, client, logger)
}

func shutdown(server *http.Server, client *mongo.Client, logger zerolog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("store disconnect error")
	}
}
