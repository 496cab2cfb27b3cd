package sentiment

import (
	"context"

	"github.com/jonreiter/govader"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
	"github.com/HarshTambade/ai-crm-insights/internal/textproc"
)

// VaderClassifier scores text with VADER. It is the default capability:
// fully local, deterministic, no model files to download.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(_ context.Context, text string) (models.Prediction, error) {
	scores := v.analyzer.PolarityScores(textproc.StripMarkup(text))
	compound := scores.Compound

	label := LabelNeutral
	if compound >= 0.20 {
		label = LabelPositive
	} else if compound <= -0.20 {
		label = LabelNegative
	}

	// Compound is in [-1,1]; shift it onto the engine's [0,1] scale.
	return models.Prediction{Label: label, Score: (compound + 1) / 2}, nil
}
