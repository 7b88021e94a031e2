package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-day-planner/config"
	"smart-day-planner/internal/genetic"
	"smart-day-planner/internal/httpserver"
	"smart-day-planner/internal/nlp"
	"smart-day-planner/internal/planner/repository/sqlite"
	"smart-day-planner/internal/planner/usecase"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	"smart-day-planner/pkg/log"
)

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

	logger.Info(ctx, "Starting Smart Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dm, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dm, _ = datemath.NewParser("UTC")
	}

	// 4. Task parser
	parserCfg := nlp.DefaultConfig()
	if cfg.Planner.DefaultDuration > 0 {
		parserCfg.DefaultDuration = cfg.Planner.DefaultDuration
	}
	parser := nlp.New(parserCfg, dm)

	// 5. SQLite repository
	repo, err := sqlite.New(cfg.Planner.SQLitePath, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer repo.Close()

	// 6. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gcal
		}
	}

	// 7. Planner UseCase
	plannerUC := usecase.New(logger, repo, parser, dm, calendarClient, usecase.Config{
		Timezone: cfg.Planner.Timezone,
		Genetic:  geneticConfig(cfg.Genetic),
		Weights:  genetic.DefaultWeights(),
		CacheTTL: time.Duration(cfg.Planner.CacheTTLMinutes) * time.Minute,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PlannerUC:       plannerUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func geneticConfig(g config.GeneticConfig) genetic.Config {
	cfg := genetic.DefaultConfig()
	if g.PopulationSize > 0 {
		cfg.PopulationSize = g.PopulationSize
	}
	if g.Generations > 0 {
		cfg.Generations = g.Generations
	}
	if g.MutationRate > 0 {
		cfg.MutationRate = g.MutationRate
	}
	if g.CrossoverRate > 0 {
		cfg.CrossoverRate = g.CrossoverRate
	}
	if g.EliteSize > 0 {
		cfg.EliteSize = g.EliteSize
	}
	if g.TournamentSize > 0 {
		cfg.TournamentSize = g.TournamentSize
	}
	if g.PlateauGenerations > 0 {
		cfg.PlateauGenerations = g.PlateauGenerations
	}
	return cfg
}
