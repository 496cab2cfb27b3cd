package leadscoring

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/HarshTambade/ai-crm-insights/internal/artifacts"
	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

// DefaultArtifactKey names the scoring model blob in the artifact store.
const DefaultArtifactKey = "lead_scoring_model.json"

// ErrNoTrainingData is returned when Train is called with an empty dataset.
var ErrNoTrainingData = errors.New("no training data")

// Engine scores leads. Prediction reads the last-published immutable
// artifact; training builds a new artifact off-lock and replaces it under
// the same mutex that guards loading, so a predict call never observes a
// half-initialized model.
type Engine struct {
	store artifacts.Store
	key   string

	mu            sync.Mutex
	artifact      *models.ModelArtifact
	loadAttempted bool
}

// NewEngine wires the engine to a blob store. A nil store pins the engine to
// fallback scoring until Train publishes an in-memory artifact.
func NewEngine(store artifacts.Store, key string) *Engine {
	if key == "" {
		key = DefaultArtifactKey
	}
	return &Engine{store: store, key: key}
}

// Score predicts with the trained model when a schema-compatible artifact is
// available and degrades to the deterministic fallback composite otherwise.
// It never fails; every output is clamped to its declared range.
func (e *Engine) Score(ctx context.Context, lead models.LeadRecord) models.ScoreResult {
	features := ExtractFeatures(lead)

	artifact := e.artifactSnapshot(ctx)
	if artifact == nil {
		return fallbackResult(features)
	}

	scaler := Scaler{Mean: artifact.Scaler.Mean, Std: artifact.Scaler.Std}
	scaled := scaler.Transform(Vectorize(features))
	probability := clamp01(predictProba(artifact.Weights, artifact.Intercept, scaled))
	score := probability * 100

	return models.ScoreResult{
		LeadScore:             round2(score),
		ConversionProbability: round4(probability),
		Confidence:            round2(PredictionConfidence(features)),
		RiskLevel:             RiskLevel(score),
		Recommendations:       Recommendations(score, features),
	}
}

// fallbackResult reports reduced, fixed confidence against the trained path.
func fallbackResult(features models.FeatureVector) models.ScoreResult {
	score := clamp(FallbackScore(features), 0, 100)

	return models.ScoreResult{
		LeadScore:             round2(score),
		ConversionProbability: round4(score / 100),
		Confidence:            0.5,
		RiskLevel:             RiskLevel(score),
		Recommendations:       Recommendations(score, features),
	}
}

// Train fits the scaler and classifier on a deterministic 80/20 split,
// publishes the artifact for this process and persists it. A persistence
// failure is logged, not returned: the in-memory model stays usable but is
// lost on restart.
func (e *Engine) Train(ctx context.Context, leads []models.LeadRecord) (models.TrainingReport, error) {
	if len(leads) == 0 {
		return models.TrainingReport{}, ErrNoTrainingData
	}

	rows := make([][]float64, len(leads))
	labels := make([]float64, len(leads))
	for i, lead := range leads {
		rows[i] = Vectorize(ExtractFeatures(lead))
		if converted(lead.Status) {
			labels[i] = 1.0
		}
	}

	trainIdx, testIdx := splitIndices(len(leads))

	trainRows := make([][]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainRows[i] = rows[idx]
	}
	scaler := FitScaler(trainRows)

	cols := len(FeatureSchema)
	flat := make([]float64, 0, len(trainIdx)*cols)
	trainLabels := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		flat = append(flat, scaler.Transform(rows[idx])...)
		trainLabels[i] = labels[idx]
	}

	model := trainLogistic(mat.NewDense(len(trainIdx), cols, flat), trainLabels)

	accuracy := evaluate(model, scaler, rows, labels, testIdx)
	if len(testIdx) == 0 {
		// Dataset too small to hold anything out; report train accuracy.
		accuracy = evaluate(model, scaler, rows, labels, trainIdx)
	}

	artifact := &models.ModelArtifact{
		Schema:    append([]string(nil), FeatureSchema...),
		Scaler:    models.ScalerParams{Mean: scaler.Mean, Std: scaler.Std},
		Weights:   model.weights,
		Intercept: model.intercept,
		Accuracy:  accuracy,
		TrainedAt: time.Now().UTC(),
	}

	e.mu.Lock()
	e.artifact = artifact
	e.loadAttempted = true
	e.mu.Unlock()

	e.persist(ctx, artifact)

	return models.TrainingReport{
		Accuracy:          accuracy,
		FeatureImportance: featureImportance(model.weights),
	}, nil
}

func (e *Engine) persist(ctx context.Context, artifact *models.ModelArtifact) {
	if e.store == nil {
		slog.Warn("[LeadScoring] No artifact store configured; trained model is in-memory only")
		return
	}

	blob, err := json.Marshal(artifact)
	if err != nil {
		slog.Error("[LeadScoring] Failed to encode model artifact",
			slog.String("error", err.Error()))
		return
	}
	if err := e.store.Save(ctx, e.key, blob); err != nil {
		slog.Error("[LeadScoring] Failed to persist model artifact; model survives this process only",
			slog.String("key", e.key),
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[LeadScoring] Model artifact persisted",
		slog.String("key", e.key),
		slog.Float64("accuracy", artifact.Accuracy))
}

// artifactSnapshot returns the current artifact, loading it from the store
// on first use. Load failures and schema mismatches are logged once and
// leave the engine on the fallback path.
func (e *Engine) artifactSnapshot(ctx context.Context) *models.ModelArtifact {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.artifact != nil {
		return e.artifact
	}
	if e.loadAttempted || e.store == nil {
		return nil
	}
	e.loadAttempted = true

	blob, err := e.store.Load(ctx, e.key)
	if err != nil {
		slog.Warn("[LeadScoring] Failed to load model artifact, using fallback scoring",
			slog.String("key", e.key),
			slog.String("error", err.Error()))
		return nil
	}
	if blob == nil {
		slog.Info("[LeadScoring] No trained model found, using fallback scoring",
			slog.String("key", e.key))
		return nil
	}

	var artifact models.ModelArtifact
	if err := json.Unmarshal(blob, &artifact); err != nil {
		slog.Warn("[LeadScoring] Failed to decode model artifact, using fallback scoring",
			slog.String("key", e.key),
			slog.String("error", err.Error()))
		return nil
	}

	if !schemaMatches(artifact.Schema) {
		slog.Warn("[LeadScoring] Artifact schema differs from extractor schema, using fallback scoring",
			slog.String("artifact_schema", strings.Join(artifact.Schema, ",")),
			slog.Int("extractor_features", len(FeatureSchema)))
		return nil
	}

	e.artifact = &artifact
	slog.Info("[LeadScoring] Model artifact loaded",
		slog.String("key", e.key),
		slog.Float64("accuracy", artifact.Accuracy))
	return e.artifact
}

func evaluate(model logisticModel, scaler Scaler, rows [][]float64, labels []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	correct := 0
	for _, i := range idx {
		p := predictProba(model.weights, model.intercept, scaler.Transform(rows[i]))
		predicted := 0.0
		if p >= 0.5 {
			predicted = 1.0
		}
		if predicted == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(idx))
}

func schemaMatches(schema []string) bool {
	if len(schema) != len(FeatureSchema) {
		return false
	}
	for i, name := range FeatureSchema {
		if schema[i] != name {
			return false
		}
	}
	return true
}

// converted derives the binary training label from the status taxonomy.
func converted(status string) bool {
	switch strings.ToLower(status) {
	case "closed_won", "qualified":
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
