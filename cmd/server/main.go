package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mergingtonactivities/config"
	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/adapters/email"
	delivery "mergingtonactivities/internal/delivery/http"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/middleware"
	"mergingtonactivities/internal/repository/memory"
	"mergingtonactivities/internal/services"
)

// @title Mergington High School Activities API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities at Mergington High School.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	activities, err := memory.LoadSeed(cfg.ActivitiesFile)
	if err != nil {
		logger.Error("failed to load activities dataset", "err", err)
		os.Exit(1)
	}
	store := memory.NewActivityStore(activities, cfg.EnforceCapacity)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	rosterService := services.NewRosterService(store, emailService)
	activityController := controllers.NewActivityController(logger, rosterService)

	mux := delivery.NewRouter(activityController, cfg.StaticDir)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activities API listening",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"activities", len(activities),
			"enforce_capacity", cfg.EnforceCapacity,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
