package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-nlp-service/config"
	parseAMQP "task-nlp-service/internal/parse/delivery/amqp"
	"task-nlp-service/internal/parse/usecase"
	"task-nlp-service/pkg/gcalendar"
	"task-nlp-service/pkg/log"
	"task-nlp-service/pkg/ner"
	"task-nlp-service/pkg/rabbitmq"
	"task-nlp-service/pkg/vitime"
)

// main is the entry point for the RabbitMQ RPC worker.
// This binary consumes parse_text requests and replies with structured
// task records.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCase
//  3. Create AMQP consumer, wire handler
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting parse consumer...")

	// Temporal resolver
	resolver, err := vitime.NewResolver(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		resolver, _ = vitime.NewResolver("UTC")
	}

	// NER client (optional: without it the full text becomes the task)
	var recognizer ner.Recognizer
	if cfg.NER.URL != "" {
		nerClient, nerErr := ner.New(cfg.NER.URL, cfg.NER.Timeout)
		if nerErr != nil {
			logger.Warnf(ctx, "NER client not available (optional): %v", nerErr)
		} else {
			recognizer = nerClient
		}
	}

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		}
	}

	// RabbitMQ
	mq, err := rabbitmq.Connect(rabbitmq.Config{URL: cfg.RabbitMQ.URL})
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer mq.Close()

	// Parse domain
	parseUC := usecase.New(logger, recognizer, resolver, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Parser.CacheSize, cfg.Parser.CacheTTL)
	consumer := parseAMQP.New(logger, parseUC, mq, cfg.RabbitMQ.Queue)

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer stopped gracefully")
}
