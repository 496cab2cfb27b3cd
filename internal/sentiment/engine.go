package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
	"github.com/HarshTambade/ai-crm-insights/internal/textproc"
)

// ResultCache memoizes per-text sentiment results so repeated analysis of
// the same message body skips the classifier. A nil cache disables
// memoization; Get/Set must never fail the request path.
type ResultCache interface {
	Get(ctx context.Context, key string) (models.SentimentResult, bool)
	Set(ctx context.Context, key string, result models.SentimentResult)
}

// Engine runs the full text pipeline: clean, classify, derive emotions, key
// phrases and tone. It is stateless apart from the optional result cache.
type Engine struct {
	classifier *SentimentClassifier
	cache      ResultCache
}

func NewEngine(capability Classifier, cache ResultCache) *Engine {
	return &Engine{
		classifier: NewSentimentClassifier(capability),
		cache:      cache,
	}
}

// Analyze produces a SentimentResult for one text unit. Blank input returns
// the documented neutral result without touching the classifier or cache.
func (e *Engine) Analyze(ctx context.Context, text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{
			Sentiment:   LabelNeutral,
			Score:       0.5,
			Confidence:  0.0,
			Emotions:    map[string]float64{},
			KeyPhrases:  []string{},
			OverallTone: "neutral",
		}
	}

	key := contentKey(text)
	if e.cache != nil {
		if cached, ok := e.cache.Get(ctx, key); ok {
			return cached
		}
	}

	cleaned := textproc.Clean(text)

	prediction := e.classifier.Classify(ctx, cleaned)
	emotions := ExtractEmotions(cleaned)
	phrases := ExtractKeyPhrases(cleaned)

	result := models.SentimentResult{
		Sentiment:   prediction.Label,
		Score:       clamp01(prediction.Score),
		Confidence:  clamp01(prediction.Score),
		Emotions:    emotions,
		KeyPhrases:  phrases,
		OverallTone: OverallTone(prediction.Label, prediction.Score, emotions),
	}

	if e.cache != nil {
		e.cache.Set(ctx, key, result)
	}

	return result
}

func contentKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}
