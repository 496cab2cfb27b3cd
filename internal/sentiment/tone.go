package sentiment

// OverallTone merges the sentiment polarity with the dominant emotion.
// Strong polarity (score > 0.7) paired with a strong emotion (> 0.5) yields
// a compound label like "very_negative_anger"; strong polarity alone yields
// "very_<polarity>"; otherwise the plain polarity or "neutral".
func OverallTone(label string, score float64, emotions map[string]float64) string {
	dominant, intensity := dominantEmotion(emotions)

	switch label {
	case LabelPositive:
		if score > 0.7 {
			if intensity > 0.5 {
				return "very_positive_" + dominant
			}
			return "very_positive"
		}
		return "positive"
	case LabelNegative:
		if score > 0.7 {
			if intensity > 0.5 {
				return "very_negative_" + dominant
			}
			return "very_negative"
		}
		return "negative"
	default:
		return "neutral"
	}
}

// dominantEmotion walks EmotionCategories in order so equal intensities
// resolve the same way on every call.
func dominantEmotion(emotions map[string]float64) (string, float64) {
	best := ""
	bestIntensity := -1.0
	for _, category := range EmotionCategories {
		if intensity, ok := emotions[category]; ok && intensity > bestIntensity {
			best = category
			bestIntensity = intensity
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestIntensity
}
