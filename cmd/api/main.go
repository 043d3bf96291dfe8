package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inbox-workload/config"
	_ "inbox-workload/docs" // Swagger docs
	"inbox-workload/internal/httpserver"
	"inbox-workload/internal/ingest"
	"inbox-workload/internal/patterns"
	"inbox-workload/internal/workload/deadline"
	workloadHTTP "inbox-workload/internal/workload/delivery/http"
	"inbox-workload/internal/workload/extractor"
	"inbox-workload/internal/workload/priority"
	"inbox-workload/internal/workload/scheduler"
	"inbox-workload/internal/workload/usecase"
	"inbox-workload/pkg/datemath"
	"inbox-workload/pkg/log"
)

// @title       Inbox Workload API
// @description Email task extraction, deadline resolution, priority classification, and capacity-aware scheduling.
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

	logger.Info(ctx, "Starting Inbox Workload...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Workload pipeline
	dateMathParser, dtErr := datemath.NewParser(cfg.Scheduler.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	lib := patterns.NewLibrary()

	taskExtractor := extractor.New(lib, extractor.Config{
		ContextRadius:   cfg.Scheduler.ContextRadius,
		ProjectKeywords: cfg.Projects.Keywords,
	})
	deadlineResolver := deadline.New(lib, dateMathParser, deadline.Config{
		EndOfBusinessHour:   cfg.Scheduler.EndOfBusinessHour,
		DefaultDeadlineDays: cfg.Scheduler.DefaultDeadlineDays,
		WeekDeadlineWeekday: cfg.Scheduler.WeekDeadlineWeekday,
		NextWeekWeekday:     cfg.Scheduler.NextWeekWeekday,
	})
	priorityClassifier := priority.New(lib, priority.Config{
		SenderWeights:       cfg.Senders.Weights,
		SenderHighThreshold: cfg.Scheduler.SenderHighThreshold,
	})
	taskScheduler := scheduler.New(scheduler.Config{
		DailyCapacityHours:   cfg.Scheduler.DailyCapacityHours,
		EffortHours:          effortHoursByLevel(cfg.Scheduler.EffortHours),
		MaxCriticalPerDay:    cfg.Scheduler.MaxCriticalPerDay,
		SenderDominanceShare: cfg.Scheduler.SenderDominanceShare,
	})

	workloadUC := usecase.New(logger, taskExtractor, deadlineResolver, priorityClassifier, taskScheduler, cfg.Scheduler.ContextRadius)

	// 4. Delivery handlers
	workloadHandler := workloadHTTP.New(logger, workloadUC)

	var ingestHandler *ingest.Handler
	if cfg.Ingest.Enabled && cfg.Ingest.Secret != "" {
		ingestHandler = ingest.NewHandler(workloadUC, ingest.SecurityConfig{
			Secret:          cfg.Ingest.Secret,
			AllowedIPs:      cfg.Ingest.AllowedIPs,
			RateLimitPerMin: cfg.Ingest.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Ingest webhook disabled: INGEST_SECRET missing or ingest.enabled=false")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		WorkloadHandler: workloadHandler,
		IngestHandler:   ingestHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
