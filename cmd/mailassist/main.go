package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/config"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/service"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/llm"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/mail"
	"github.com/mug4z/GoInfomaniakHackaton2025/internal/server"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment")
	}
	cfg := config.Load()

	// Mail provider client
	mailClient := mail.NewClient(cfg.MailAPIURL, cfg.MailToken)

	// The two generation capabilities: one extractor, one reviewer, each
	// with its own model and decoding parameters.
	extractor := llm.NewClient(llm.Config{
		BaseURL:     cfg.AIBaseURL(),
		APIKey:      cfg.AIToken,
		Model:       cfg.ExtractorModel,
		Temperature: 0.12,
		MaxTokens:   5000,
	})
	reviewer := llm.NewClient(llm.Config{
		BaseURL:     cfg.AIBaseURL(),
		APIKey:      cfg.AIToken,
		Model:       cfg.ReviewerModel,
		Temperature: 0.13,
		MaxTokens:   5000,
	})

	eventService := service.NewEventSuggestionService(mailClient, extractor, reviewer)
	toneService := service.NewToneCheckService(mailClient, extractor, reviewer)
	digestService := service.NewDailyDigestService(mailClient, extractor, reviewer)

	httpServer := server.NewHTTPServer(mailClient, eventService, toneService, digestService)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.WithError(err).Info("HTTP server stopped")
		}
	}()

	log.Info("Mail assistant service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down mail assistant service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
