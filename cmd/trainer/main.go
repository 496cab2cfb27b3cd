package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/HarshTambade/ai-crm-insights/config"
	"github.com/HarshTambade/ai-crm-insights/internal/artifacts"
	"github.com/HarshTambade/ai-crm-insights/internal/clients"
	"github.com/HarshTambade/ai-crm-insights/internal/leadscoring"
	"github.com/HarshTambade/ai-crm-insights/internal/logging"
	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	datasetPath := flag.String("dataset", "leads.json", "path to a JSON array of historical lead records")
	flag.Parse()

	cfg := config.FromEnv()

	store, err := buildStore(cfg)
	if err != nil {
		slog.Error("[Trainer] Failed to initialize artifact store",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	raw, err := os.ReadFile(*datasetPath)
	if err != nil {
		slog.Error("[Trainer] Failed to read dataset",
			slog.String("path", *datasetPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var leads []models.LeadRecord
	if err := json.Unmarshal(raw, &leads); err != nil {
		slog.Error("[Trainer] Failed to decode dataset",
			slog.String("path", *datasetPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	engine := leadscoring.NewEngine(store, cfg.ArtifactKey)

	report, err := engine.Train(context.Background(), leads)
	if err != nil {
		slog.Error("[Trainer] Training failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Trainer] Training complete",
		slog.Int("examples", len(leads)),
		slog.Float64("accuracy", report.Accuracy))

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("[Trainer] Failed to encode report",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func buildStore(cfg config.Config) (artifacts.Store, error) {
	switch cfg.ArtifactBackend {
	case "dynamodb":
		return artifacts.NewDynamoStore(clients.GetDynamoDBClient(), cfg.ArtifactTable), nil
	default:
		return artifacts.NewFSStore(cfg.ArtifactDir)
	}
}
