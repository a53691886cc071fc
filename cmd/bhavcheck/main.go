package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/muhammadchandra19/tick-data-service/internal/bootstrap"
	"github.com/muhammadchandra19/tick-data-service/internal/infrastructure/bhavcopy"
	"github.com/muhammadchandra19/tick-data-service/pkg/config"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
	"github.com/muhammadchandra19/tick-data-service/pkg/questdb"
	"github.com/muhammadchandra19/tick-data-service/pkg/util"
)

func main() {
	ctx := util.WithRequestID(context.Background(), "")

	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <YYYY-MM-DD>", os.Args[0])
	}

	date, err := time.ParseInLocation(util.DateLayout, os.Args[1], time.UTC)
	if err != nil {
		log.Fatalf("Invalid date %q, expected YYYY-MM-DD: %v", os.Args[1], err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	// Initialize QuestDB client
	client, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		log.Fatalf("Failed to initialize QuestDB client: %v", err)
	}
	defer client.Close()

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		QuestDB:         client,
		Logger:          lg,
		ReferenceSource: bhavcopy.NewSource(cfg.Bhavcopy.Dir, lg),
		StrictTicks:     cfg.Engine.StrictTicks,
	})

	report, err := app.Usecase.SanityUsecase.RunBhavChecks(ctx, date)
	if err != nil {
		log.Fatalf("Failed to run bhav checks: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	fmt.Println(string(out))
}
