package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-nlp-service/config"
	_ "task-nlp-service/docs" // Swagger docs
	"task-nlp-service/internal/httpserver"
	parseHTTP "task-nlp-service/internal/parse/delivery/http"
	"task-nlp-service/internal/parse/usecase"
	"task-nlp-service/pkg/gcalendar"
	"task-nlp-service/pkg/log"
	"task-nlp-service/pkg/ner"
	"task-nlp-service/pkg/vitime"
)

// @title       Task NLP Service API
// @description Vietnamese task parsing: entity spans, priority scoring, and temporal resolution.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task NLP Service API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Temporal resolver
	resolver, err := vitime.NewResolver(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		resolver, _ = vitime.NewResolver("UTC")
	}

	// 4. NER client (optional: without it the full text becomes the task)
	var recognizer ner.Recognizer
	if cfg.NER.URL != "" {
		nerClient, nerErr := ner.New(cfg.NER.URL, cfg.NER.Timeout)
		if nerErr != nil {
			logger.Warnf(ctx, "NER client not available (optional): %v", nerErr)
		} else {
			recognizer = nerClient
		}
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Parse domain
	parseUC := usecase.New(logger, recognizer, resolver, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Parser.CacheSize, cfg.Parser.CacheTTL)
	parseHandler := parseHTTP.New(logger, parseUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ParseHandler:    parseHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
