package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/crawler"
	"github.com/Gomguk-paper/Gomguk-BE/internal/db"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/pipeline"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/summarizer"
)

// Runs the crawl/select/summarize batch. With PIPELINE_INTERVAL_MINUTES set
// it keeps running on that interval, otherwise it runs once and exits.
func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.New(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	theDB := dbService.DB()

	paperRepo := repos.NewPaperRepo(theDB, log)
	summaryRepo := repos.NewSummaryRepo(theDB, log)

	crawlerCfg := config.CrawlerConfigFromEnv(log)
	pipelineCfg := config.PipelineConfigFromEnv(log)

	p := pipeline.New(
		theDB,
		log,
		pipelineCfg,
		crawler.New(crawlerCfg, log),
		summarizer.New(log),
		paperRepo,
		summaryRepo,
	)

	ctx := context.Background()
	if err := p.Run(ctx); err != nil {
		log.Error("Pipeline run failed", "error", err)
	}

	if pipelineCfg.IntervalMinutes <= 0 {
		return
	}

	interval := time.Duration(pipelineCfg.IntervalMinutes) * time.Minute
	log.Info("Pipeline scheduled", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if err := p.Run(ctx); err != nil {
			log.Error("Pipeline run failed", "error", err)
		}
	}
}
