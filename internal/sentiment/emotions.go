package sentiment

import (
	"math"
	"strings"
)

// EmotionCategories is the fixed set of detected emotions, in the order used
// for deterministic dominant-emotion selection.
var EmotionCategories = []string{
	"joy", "sadness", "anger", "fear", "surprise", "disgust", "trust", "anticipation",
}

var emotionKeywords = map[string][]string{
	"joy":          {"happy", "joy", "excited", "thrilled", "delighted", "pleased"},
	"sadness":      {"sad", "disappointed", "upset", "depressed", "unhappy", "grief"},
	"anger":        {"angry", "mad", "furious", "irritated", "annoyed", "frustrated"},
	"fear":         {"afraid", "scared", "worried", "anxious", "terrified", "nervous"},
	"surprise":     {"surprised", "shocked", "amazed", "astonished", "stunned"},
	"disgust":      {"disgusted", "revolted", "appalled", "sickened"},
	"trust":        {"trust", "confident", "reliable", "secure", "safe"},
	"anticipation": {"excited", "eager", "looking forward", "anticipate"},
}

// ExtractEmotions scores each category by keyword matches; intensity is
// 0.2 per matched keyword, capped at 1.0. Categories without matches stay 0.
func ExtractEmotions(text string) map[string]float64 {
	lower := strings.ToLower(text)

	emotions := make(map[string]float64, len(EmotionCategories))
	for _, category := range EmotionCategories {
		emotions[category] = 0.0

		count := 0
		for _, kw := range emotionKeywords[category] {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > 0 {
			emotions[category] = math.Min(1.0, float64(count)*0.2)
		}
	}

	return emotions
}
