package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"pauta_voting_system/configs"
	"pauta_voting_system/internal/api"
	"pauta_voting_system/internal/db"
	"pauta_voting_system/internal/db/repositories"
	"pauta_voting_system/internal/di"
	"pauta_voting_system/internal/services"
	"syscall"
)

func main() {
	config, err := configs.LoadVotingAPIConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(ctx, config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	userRepository := repositories.NewUserRepository(database)
	sectionRepository := repositories.NewSectionRepository(database)
	voteRepository := repositories.NewVoteRepository(database)

	gate := di.NewEligibilityGate(config.Eligibility, userRepository, logger)

	router := api.NewRouter(config.HTTP, api.Services{
		Users:    services.NewUserService(userRepository),
		Sections: services.NewSectionService(sectionRepository),
		Votes:    services.NewVoteService(sectionRepository, voteRepository, gate, logger),
	}, logger)

	server := &http.Server{
		Addr:         config.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
	}

	go func() {
		logger.Infow("http server started", "addr", config.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to serve http", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down http server", "error", err)
	}
}
