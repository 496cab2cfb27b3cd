package sentiment

import (
	"context"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

const (
	trendSlopeThreshold  = 0.05
	keyMomentThreshold   = 0.3
	maxKeyMoments        = 3
	keyMomentExcerptSize = 100
)

type scoredMessage struct {
	index   int
	label   string
	score   float64
	excerpt string
}

// AnalyzeConversation folds per-message sentiment into conversation-level
// signals. Messages with blank content are skipped but the remaining
// messages keep their original indices for key-moment attribution.
func (e *Engine) AnalyzeConversation(ctx context.Context, messages []models.Message) models.ConversationAnalysis {
	var scored []scoredMessage
	for i, message := range messages {
		if strings.TrimSpace(message.Content) == "" {
			continue
		}
		result := e.Analyze(ctx, message.Content)
		scored = append(scored, scoredMessage{
			index:   i,
			label:   result.Sentiment,
			score:   result.Score,
			excerpt: excerpt(message.Content, keyMomentExcerptSize),
		})
	}

	if len(scored) == 0 {
		return models.ConversationAnalysis{
			OverallSentiment: LabelNeutral,
			SentimentTrend:   "stable",
			AverageSentiment: 0.5,
			SentimentChanges: 0,
			KeyMoments:       []models.KeyMoment{},
		}
	}

	scores := make([]float64, len(scored))
	for i, sm := range scored {
		scores[i] = sm.score
	}
	average := stat.Mean(scores, nil)

	return models.ConversationAnalysis{
		OverallSentiment:      labelForScore(average),
		SentimentTrend:        trendFor(scores),
		AverageSentiment:      round3(average),
		SentimentChanges:      countChanges(scored),
		KeyMoments:            keyMoments(scored),
		SentimentDistribution: distribution(scored),
	}
}

// trendFor fits a least-squares line to (position, score); slopes within
// ±0.05 read as stable. Fewer than two points are always stable.
func trendFor(scores []float64) string {
	if len(scores) < 2 {
		return "stable"
	}

	xs := make([]float64, len(scores))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, scores, nil, false)

	switch {
	case slope > trendSlopeThreshold:
		return "improving"
	case slope < -trendSlopeThreshold:
		return "declining"
	default:
		return "stable"
	}
}

func countChanges(scored []scoredMessage) int {
	changes := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].label != scored[i-1].label {
			changes++
		}
	}
	return changes
}

// keyMoments reports the first three adjacent score swings larger than 0.3.
func keyMoments(scored []scoredMessage) []models.KeyMoment {
	moments := []models.KeyMoment{}
	for i := 1; i < len(scored); i++ {
		change := math.Abs(scored[i].score - scored[i-1].score)
		if change <= keyMomentThreshold {
			continue
		}
		moments = append(moments, models.KeyMoment{
			Index:           scored[i].index,
			Message:         scored[i].excerpt,
			SentimentChange: round3(change),
			NewSentiment:    labelForScore(scored[i].score),
		})
		if len(moments) == maxKeyMoments {
			break
		}
	}
	return moments
}

func distribution(scored []scoredMessage) models.SentimentDistribution {
	var dist models.SentimentDistribution
	for _, sm := range scored {
		switch sm.label {
		case LabelPositive:
			dist.Positive++
		case LabelNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}
	return dist
}

func labelForScore(score float64) string {
	switch {
	case score > 0.6:
		return LabelPositive
	case score < 0.4:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
