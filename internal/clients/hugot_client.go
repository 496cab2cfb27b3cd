package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

const (
	defaultHugotModel = "distilbert-base-uncased-finetuned-sst-2-english"
	defaultModelDir   = "./models"
)

// HugotClassifier runs a local ONNX sentiment pipeline. Session and pipeline
// are built once on first use under a lock; a failed build is remembered so
// the engine's keyword fallback takes over without re-probing every call,
// and a half-built session is never published.
type HugotClassifier struct {
	modelName string
	modelDir  string

	mu       sync.Mutex
	pipeline *pipelines.TextClassificationPipeline
	initErr  error
	initDone bool
}

func NewHugotClassifier(modelName, modelDir string) *HugotClassifier {
	if modelName == "" {
		modelName = defaultHugotModel
	}
	if modelDir == "" {
		modelDir = defaultModelDir
	}
	return &HugotClassifier{modelName: modelName, modelDir: modelDir}
}

func (h *HugotClassifier) Classify(_ context.Context, text string) (models.Prediction, error) {
	pipeline, err := h.acquire()
	if err != nil {
		return models.Prediction{}, err
	}

	output, err := pipeline.RunPipeline([]string{text})
	if err != nil {
		return models.Prediction{}, fmt.Errorf("run pipeline: %w", err)
	}

	outputs := output.GetOutput()
	if len(outputs) == 0 {
		return models.Prediction{}, fmt.Errorf("empty pipeline output")
	}

	raw, ok := outputs[0].(string)
	if !ok {
		return models.Prediction{}, fmt.Errorf("unexpected pipeline output type %T", outputs[0])
	}

	var prediction models.Prediction
	if err := json.Unmarshal([]byte(raw), &prediction); err != nil {
		return models.Prediction{}, fmt.Errorf("decode pipeline output: %w", err)
	}
	return prediction, nil
}

func (h *HugotClassifier) acquire() (*pipelines.TextClassificationPipeline, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initDone {
		return h.pipeline, h.initErr
	}
	h.initDone = true
	h.pipeline, h.initErr = h.buildPipeline()
	return h.pipeline, h.initErr
}

func (h *HugotClassifier) buildPipeline() (*pipelines.TextClassificationPipeline, error) {
	if err := os.MkdirAll(h.modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create model directory: %w", err)
	}

	slog.Info("[HugotClassifier] Ensuring model is available",
		slog.String("model", h.modelName),
		slog.String("dir", h.modelDir))
	modelPath, err := hugot.DownloadModel(h.modelName, h.modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("download model: %w", err)
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("initialize classification pipeline: %w", err)
	}

	slog.Info("[HugotClassifier] Pipeline ready", slog.String("path", modelPath))
	return pipeline, nil
}
