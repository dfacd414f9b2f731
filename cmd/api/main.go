package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eventsnap/config"
	_ "eventsnap/docs" // Swagger docs
	eventRepo "eventsnap/internal/event/repository/sqlite"
	"eventsnap/internal/event/usecase"
	"eventsnap/internal/httpserver"
	"eventsnap/pkg/datetoken"
	"eventsnap/pkg/gcalendar"
	"eventsnap/pkg/gemini"
	"eventsnap/pkg/ics"
	"eventsnap/pkg/log"
	"eventsnap/pkg/share"
)

// @title       EventSnap API
// @description Turns flyer photos into structured event records with calendar export, sharing, and direct Google Calendar insertion.
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

	logger.Info(ctx, "Starting EventSnap...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date/time normalizer
	tokens, err := datetoken.NewNormalizer(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		tokens, _ = datetoken.NewNormalizer("UTC")
	}

	// 4. Gemini vision client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Extraction history (SQLite)
	repo, db, err := eventRepo.New(logger, cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open event storage: ", err)
		return
	}
	defer db.Close()

	// 7. Share cascade
	cascade := share.DefaultCascade(cfg.Share.Command, cfg.Share.Args, cfg.Share.SpoolDir)

	// 8. Event UseCase
	eventUC := usecase.New(
		logger,
		geminiClient,
		calendarClient,
		ics.NewGenerator(tokens),
		gcalendar.NewLinkBuilder(tokens),
		cascade,
		repo,
		tokens,
		cfg.Extract.CacheSize,
		cfg.GoogleCalendar.CalendarID,
	)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,
		EventUC:     eventUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
