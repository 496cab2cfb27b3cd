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
	"github.com/HarshTambade/ai-crm-insights/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	leadPath := flag.String("lead", "", "score the lead record in this JSON file")
	conversationPath := flag.String("conversation", "", "analyze the JSON message list in this file")
	text := flag.String("text", "", "analyze the sentiment of this text")
	flag.Parse()

	cfg := config.FromEnv()
	ctx := context.Background()

	switch {
	case *leadPath != "":
		scoreLead(ctx, cfg, *leadPath)
	case *conversationPath != "":
		analyzeConversation(ctx, cfg, *conversationPath)
	case *text != "":
		analyzeText(ctx, cfg, *text)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func scoreLead(ctx context.Context, cfg config.Config, path string) {
	var lead models.LeadRecord
	decodeFile(path, &lead)

	store, err := buildStore(cfg)
	if err != nil {
		slog.Error("[Insights] Failed to initialize artifact store",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	engine := leadscoring.NewEngine(store, cfg.ArtifactKey)
	printJSON(engine.Score(ctx, lead))
}

func analyzeConversation(ctx context.Context, cfg config.Config, path string) {
	var messages []models.Message
	decodeFile(path, &messages)

	engine := buildSentimentEngine(cfg)
	printJSON(engine.AnalyzeConversation(ctx, messages))
}

func analyzeText(ctx context.Context, cfg config.Config, text string) {
	engine := buildSentimentEngine(cfg)
	printJSON(engine.Analyze(ctx, text))
}

func buildStore(cfg config.Config) (artifacts.Store, error) {
	switch cfg.ArtifactBackend {
	case "dynamodb":
		return artifacts.NewDynamoStore(clients.GetDynamoDBClient(), cfg.ArtifactTable), nil
	default:
		return artifacts.NewFSStore(cfg.ArtifactDir)
	}
}

func buildSentimentEngine(cfg config.Config) *sentiment.Engine {
	capability := buildCapability(cfg)

	var cache sentiment.ResultCache
	if cfg.ValkeyEnabled {
		valkeyCache, err := clients.NewValkeyCache()
		if err != nil {
			slog.Warn("[Insights] Valkey unavailable, result caching disabled",
				slog.String("error", err.Error()))
		} else {
			cache = valkeyCache
		}
	}

	return sentiment.NewEngine(capability, cache)
}

// buildCapability picks the text-classification capability. Returning nil
// pins the engine to the deterministic keyword fallback.
func buildCapability(cfg config.Config) sentiment.Classifier {
	switch cfg.ClassifierBackend {
	case "hugot":
		return clients.NewHugotClassifier(cfg.HugotModel, cfg.HugotModelDir)
	case "remote":
		if cfg.RemoteEndpoint == "" {
			slog.Warn("[Insights] CLASSIFIER_ENDPOINT not set, using keyword fallback")
			return nil
		}
		return clients.NewRemoteClassifier(cfg.RemoteEndpoint)
	case "openai":
		classifier, err := clients.NewOpenAIClassifier()
		if err != nil {
			slog.Warn("[Insights] OpenAI classifier unavailable, using keyword fallback",
				slog.String("error", err.Error()))
			return nil
		}
		return classifier
	case "none":
		return nil
	default:
		return sentiment.NewVaderClassifier()
	}
}

func decodeFile(path string, target interface{}) {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Error("[Insights] Failed to read input",
			slog.String("path", path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		slog.Error("[Insights] Failed to decode input",
			slog.String("path", path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printJSON(value interface{}) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		slog.Error("[Insights] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
