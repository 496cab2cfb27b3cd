package models

import "time"

// FeatureVector maps feature names to values. The key set and its order are
// fixed by leadscoring.FeatureSchema; training and prediction must agree on
// it exactly.
type FeatureVector map[string]float64

// ScoreResult is the caller-facing output of the lead scoring engine.
// LeadScore is clamped to [0,100], the probability and confidence to [0,1].
type ScoreResult struct {
	LeadScore             float64  `json:"lead_score"`
	ConversionProbability float64  `json:"conversion_probability"`
	Confidence            float64  `json:"confidence"`
	RiskLevel             string   `json:"risk_level"`
	Recommendations       []string `json:"recommendations"`
}

// TrainingReport summarizes a completed training run.
type TrainingReport struct {
	Accuracy          float64            `json:"accuracy"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

// ScalerParams holds per-feature standardization parameters, ordered by the
// schema recorded on the artifact.
type ScalerParams struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// ModelArtifact is the unit of persistence for a trained scoring model:
// classifier weights, fitted scaler and the feature schema it was trained
// against, saved as a single blob.
type ModelArtifact struct {
	Schema    []string     `json:"schema"`
	Scaler    ScalerParams `json:"scaler"`
	Weights   []float64    `json:"weights"`
	Intercept float64      `json:"intercept"`
	Accuracy  float64      `json:"accuracy"`
	TrainedAt time.Time    `json:"trained_at"`
}
