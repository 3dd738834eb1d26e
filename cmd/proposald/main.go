package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/construtiva/proposal-pipeline/internal/common"
	"github.com/construtiva/proposal-pipeline/internal/credentials"
	"github.com/construtiva/proposal-pipeline/internal/export"
	"github.com/construtiva/proposal-pipeline/internal/llm/openai"
	"github.com/construtiva/proposal-pipeline/internal/pdfvendor"
	"github.com/construtiva/proposal-pipeline/internal/pipeline"
	"github.com/construtiva/proposal-pipeline/internal/plog"
	repo "github.com/construtiva/proposal-pipeline/internal/repository"
	srv "github.com/construtiva/proposal-pipeline/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// local runs: .env is optional, missing file is fine
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// the database may still be coming up when we are; give it a few tries
	if err := common.Retry(ctx, 3, 500*time.Millisecond, func(ctx context.Context) error {
		return repo.HealthCheck(ctx, pool, 3*time.Second, logger)
	}); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	resolver := credentials.NewResolver(cfg.Credentials, credentials.Fallback{
		PDF: credentials.PDFCredentials{
			ClientID:       cfg.PDFVendor.ClientID,
			ClientSecret:   cfg.PDFVendor.ClientSecret,
			OrganizationID: cfg.PDFVendor.OrganizationID,
		},
		LLM: credentials.LLMCredentials{APIKey: cfg.LLM.APIKey},
	}, logger)

	pdfClient := pdfvendor.NewClient(pdfvendor.Config{
		BaseURL: cfg.PDFVendor.BaseURL,
	}, logger)

	organizer := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	proposalsRepo := repo.NewProposalRepository(entc, logger)
	plogRepo := repo.NewProcessingLogRepository(entc, logger)
	plogger := plog.NewLogger(plogRepo, logger)

	processor := pipeline.NewProcessor(logger, resolver, pdfClient, organizer, proposalsRepo, plogger)
	exporter := export.NewService(proposalsRepo, logger)

	s := srv.New(processor, proposalsRepo, plogger, plogRepo, exporter, resolver, cfg.Credentials.ServiceToken, logger)
	e := s.Router()

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := e.Start(cfg.Server.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
