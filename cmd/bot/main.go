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

	"github.com/yourusername/product-catalog/config"
	"github.com/yourusername/product-catalog/internal/delivery/telegram"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/infrastructure/exporter"
	"github.com/yourusername/product-catalog/internal/infrastructure/gemini"
	"github.com/yourusername/product-catalog/internal/infrastructure/parser"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
	"github.com/yourusername/product-catalog/internal/logging"
	"github.com/yourusername/product-catalog/internal/metrics"
	"github.com/yourusername/product-catalog/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.ValidateBot(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"assistant", cfg.AssistantEnabled(),
		"max_upload_mb", cfg.MaxUploadMB,
		"metrics_port", cfg.MetricsPort,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.MetricsPort != "" {
		metricsServer = metrics.StartServer(cfg.MetricsPort)
	}

	// Repositories
	catalogRepo := storage.NewMemoryCatalogRepository()
	activityRepo := storage.NewMemoryActivityRepository()
	chatRepo := storage.NewMemoryChatRepository(cfg.MaxContextSize)

	// Assistant is optional; a nil interface disables it
	var aiRepo repository.AIRepository
	if cfg.AssistantEnabled() {
		client, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			slog.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		aiRepo = client
	}

	// Use cases
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, activityRepo, parser.NewExcelParser(), parser.NewTemplateGenerator())
	exportUseCase := usecase.NewExportUseCase(catalogRepo, activityRepo, exporter.New(time.Now, storage.DefaultCategories()))
	chatUseCase := usecase.NewChatUseCase(aiRepo, chatRepo, catalogRepo)

	handler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		catalogUseCase,
		exportUseCase,
		chatUseCase,
		cfg.AssistantEnabled(),
		cfg.MaxUploadMB,
	)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := handler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("bot stopped", "error", err)
	}

	slog.Info("shutting down...")
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", "error", err)
		}
	}
}
