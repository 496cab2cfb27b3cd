package sentiment

import (
	"context"
	"testing"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

// memCache is an in-process ResultCache for tests.
type memCache struct {
	entries map[string]models.SentimentResult
	hits    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]models.SentimentResult{}}
}

func (c *memCache) Get(_ context.Context, key string) (models.SentimentResult, bool) {
	result, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return result, ok
}

func (c *memCache) Set(_ context.Context, key string, result models.SentimentResult) {
	c.entries[key] = result
}

// countingCapability tracks classifier invocations.
type countingCapability struct {
	calls int
}

func (c *countingCapability) Classify(_ context.Context, _ string) (models.Prediction, error) {
	c.calls++
	return models.Prediction{Label: LabelPositive, Score: 0.8}, nil
}

func TestAnalyzeBlankInput(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil, nil)
	got := engine.Analyze(context.Background(), "   ")

	if got.Sentiment != LabelNeutral || got.Score != 0.5 || got.Confidence != 0.0 {
		t.Fatalf("blank result=%+v", got)
	}
	if got.Emotions == nil || got.KeyPhrases == nil {
		t.Fatal("blank result should carry empty, non-nil collections")
	}
	if got.OverallTone != "neutral" {
		t.Fatalf("tone=%q, want neutral", got.OverallTone)
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	t.Parallel()

	engine := NewEngine(&countingCapability{}, nil)
	got := engine.Analyze(context.Background(), "I am happy and thrilled, thanks for the great service!")

	if got.Sentiment != LabelPositive {
		t.Fatalf("sentiment=%q, want positive", got.Sentiment)
	}
	if got.Score != 0.8 || got.Confidence != 0.8 {
		t.Fatalf("score=%v confidence=%v, want 0.8 each", got.Score, got.Confidence)
	}
	if got.Emotions["joy"] != 0.4 {
		t.Fatalf("joy=%v, want 0.4 (happy, thrilled)", got.Emotions["joy"])
	}
	if len(got.KeyPhrases) != 1 {
		t.Fatalf("key phrases=%v, want the service sentence", got.KeyPhrases)
	}
	// Strong polarity with a sub-0.5 dominant emotion.
	if got.OverallTone != "very_positive" {
		t.Fatalf("tone=%q, want very_positive", got.OverallTone)
	}
}

func TestAnalyzeUsesCache(t *testing.T) {
	t.Parallel()

	capability := &countingCapability{}
	cache := newMemCache()
	engine := NewEngine(capability, cache)

	text := "thanks for the quick help with my account"
	first := engine.Analyze(context.Background(), text)
	second := engine.Analyze(context.Background(), text)

	if capability.calls != 1 {
		t.Fatalf("capability called %d times, want 1", capability.calls)
	}
	if cache.hits != 1 {
		t.Fatalf("cache hits=%d, want 1", cache.hits)
	}
	if first.Sentiment != second.Sentiment || first.Score != second.Score {
		t.Fatalf("cached result diverged: %+v vs %+v", first, second)
	}
}

func TestAnalyzeCacheKeyedByContent(t *testing.T) {
	t.Parallel()

	cache := newMemCache()
	engine := NewEngine(&countingCapability{}, cache)

	engine.Analyze(context.Background(), "first message")
	engine.Analyze(context.Background(), "second message")

	if len(cache.entries) != 2 {
		t.Fatalf("cache has %d entries, want 2", len(cache.entries))
	}
}
