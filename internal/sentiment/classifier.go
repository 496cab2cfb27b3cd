package sentiment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
	"github.com/HarshTambade/ai-crm-insights/internal/textproc"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// chunkThreshold is the input-length limit of the classification capability;
// longer texts are chunked on word boundaries and the chunk results merged.
const chunkThreshold = 500

// Classifier is the external text-classification capability. Implementations
// live in internal/clients (hugot, remote HTTP, OpenAI) and in this package
// (VADER).
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Prediction, error)
}

// SentimentClassifier wraps a capability with blank-input short-circuiting,
// chunk aggregation and the keyword fallback. It never fails: any capability
// error downgrades to the keyword scorer.
type SentimentClassifier struct {
	capability Classifier
}

// NewSentimentClassifier builds a classifier around the given capability.
// A nil capability pins the classifier to the keyword fallback.
func NewSentimentClassifier(capability Classifier) *SentimentClassifier {
	return &SentimentClassifier{capability: capability}
}

func (c *SentimentClassifier) Classify(ctx context.Context, text string) models.Prediction {
	if strings.TrimSpace(text) == "" {
		return models.Prediction{Label: LabelNeutral, Score: 0.5}
	}

	if c.capability == nil {
		return keywordScore(text)
	}

	if len(text) > chunkThreshold {
		return c.classifyChunked(ctx, text)
	}

	prediction, err := c.capability.Classify(ctx, text)
	if err != nil {
		slog.Warn("[SentimentClassifier] Capability failed, using keyword fallback",
			slog.String("error", err.Error()))
		return keywordScore(text)
	}

	return normalize(prediction)
}

func (c *SentimentClassifier) classifyChunked(ctx context.Context, text string) models.Prediction {
	chunks := textproc.Chunk(text, chunkThreshold)

	predictions := make([]models.Prediction, 0, len(chunks))
	for _, chunk := range chunks {
		prediction, err := c.capability.Classify(ctx, chunk)
		if err != nil {
			slog.Warn("[SentimentClassifier] Chunk classification failed, using keyword fallback",
				slog.Int("chunks", len(chunks)),
				slog.String("error", err.Error()))
			return keywordScore(text)
		}
		predictions = append(predictions, normalize(prediction))
	}

	return aggregateChunks(predictions)
}

// aggregateChunks majority-votes the chunk labels and averages their scores.
// A vote tie is broken in favor of the label seen earliest, so the result is
// deterministic for any chunk ordering.
func aggregateChunks(predictions []models.Prediction) models.Prediction {
	if len(predictions) == 0 {
		return models.Prediction{Label: LabelNeutral, Score: 0.5}
	}

	counts := make(map[string]int, 3)
	var order []string
	total := 0.0

	for _, p := range predictions {
		if _, seen := counts[p.Label]; !seen {
			order = append(order, p.Label)
		}
		counts[p.Label]++
		total += p.Score
	}

	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}

	return models.Prediction{Label: best, Score: total / float64(len(predictions))}
}

// normalize maps capability-specific labels onto the fixed label set and
// clamps the score. Unknown labels read as neutral.
func normalize(p models.Prediction) models.Prediction {
	switch strings.ToLower(p.Label) {
	case "positive", "pos", "label_2":
		p.Label = LabelPositive
	case "negative", "neg", "label_0":
		p.Label = LabelNegative
	default:
		p.Label = LabelNeutral
	}
	p.Score = clamp01(p.Score)
	return p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
