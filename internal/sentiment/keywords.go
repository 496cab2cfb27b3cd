package sentiment

import (
	"math"
	"strings"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

var positiveKeywords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "like", "happy", "satisfied", "pleased", "thank", "thanks",
	"awesome", "perfect", "outstanding", "superb", "brilliant",
}

var negativeKeywords = []string{
	"bad", "terrible", "awful", "horrible", "disappointed", "angry",
	"frustrated", "upset", "hate", "dislike", "poor", "worst",
	"unhappy", "dissatisfied", "annoyed", "irritated", "mad",
}

// keywordScore is the deterministic last-resort scorer used when no
// classifier capability is configured or the capability fails. It compares
// the ratio of matched positive and negative keywords to the word count;
// ties are neutral.
func keywordScore(text string) models.Prediction {
	lower := strings.ToLower(text)

	words := strings.Fields(text)
	if len(words) == 0 {
		return models.Prediction{Label: LabelNeutral, Score: 0.5}
	}

	positive := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			positive++
		}
	}
	negative := 0
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			negative++
		}
	}

	positiveRatio := float64(positive) / float64(len(words))
	negativeRatio := float64(negative) / float64(len(words))

	switch {
	case positiveRatio > negativeRatio:
		return models.Prediction{Label: LabelPositive, Score: math.Min(0.9, 0.5+positiveRatio)}
	case negativeRatio > positiveRatio:
		return models.Prediction{Label: LabelNegative, Score: math.Min(0.9, 0.5+negativeRatio)}
	default:
		return models.Prediction{Label: LabelNeutral, Score: 0.5}
	}
}
