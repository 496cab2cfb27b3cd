package leadscoring

import (
	"math"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

// fallbackWeights is the fixed subset of features the deterministic scorer
// combines, in declaration order. days_since_last_activity is intentionally
// absent.
var fallbackWeights = []struct {
	name   string
	weight float64
}{
	{"has_email", 0.1},
	{"has_phone", 0.1},
	{"has_company", 0.15},
	{"has_job_title", 0.1},
	{"company_size_score", 0.15},
	{"source_score", 0.2},
	{"engagement_score", 0.3},
	{"budget_score", 0.2},
	{"timeline_score", 0.15},
	{"activity_count", 0.1},
	{"response_time_score", 0.1},
}

// requiredFeatures drives the confidence estimate: confidence grows with the
// share of these that are present and non-zero.
var requiredFeatures = []string{
	"has_email", "has_phone", "has_company", "has_job_title",
	"source_score", "engagement_score", "budget_score", "timeline_score",
}

const baseConfidence = 0.2

// FallbackScore computes the weighted composite used when no trained model
// is available, normalized by the weights of the features actually present
// and scaled to [0,100]. An empty vector scores a neutral 50.
func FallbackScore(features models.FeatureVector) float64 {
	total := 0.0
	totalWeight := 0.0

	for _, fw := range fallbackWeights {
		value, ok := features[fw.name]
		if !ok {
			continue
		}
		total += value * fw.weight
		totalWeight += fw.weight
	}

	if totalWeight == 0 {
		return 50.0
	}
	return total / totalWeight * 100
}

// PredictionConfidence derives confidence from feature completeness.
func PredictionConfidence(features models.FeatureVector) float64 {
	present := 0
	for _, name := range requiredFeatures {
		if value, ok := features[name]; ok && value > 0 {
			present++
		}
	}
	return math.Min(1.0, float64(present)/float64(len(requiredFeatures))+baseConfidence)
}

// RiskLevel maps a lead score onto the risk taxonomy.
func RiskLevel(score float64) string {
	switch {
	case score >= 80:
		return "low"
	case score >= 60:
		return "medium"
	case score >= 40:
		return "high"
	default:
		return "very_high"
	}
}

type recommendationRule struct {
	applies func(score float64, features models.FeatureVector) bool
	advice  []string
}

// recommendationRules fire independently and in declaration order; every
// matching rule contributes its advice.
var recommendationRules = []recommendationRule{
	{
		applies: func(score float64, _ models.FeatureVector) bool { return score < 40 },
		advice: []string{
			"High risk lead - consider disqualifying",
			"Focus on qualification before pursuing",
		},
	},
	{
		applies: func(_ float64, f models.FeatureVector) bool { return f["engagement_score"] < 0.3 },
		advice: []string{
			"Low engagement - increase touch points",
			"Consider different communication channels",
		},
	},
	{
		applies: func(_ float64, f models.FeatureVector) bool { return f["response_time_score"] < 0.5 },
		advice:  []string{"Slow response times - improve follow-up process"},
	},
	{
		applies: func(_ float64, f models.FeatureVector) bool { return f["budget_score"] < 0.3 },
		advice:  []string{"Budget concerns - focus on value proposition"},
	},
	{
		applies: func(score float64, _ models.FeatureVector) bool { return score >= 70 },
		advice: []string{
			"High-value lead - prioritize follow-up",
			"Consider expedited sales process",
		},
	},
}

// Recommendations evaluates every rule against the score and features.
func Recommendations(score float64, features models.FeatureVector) []string {
	var advice []string
	for _, rule := range recommendationRules {
		if rule.applies(score, features) {
			advice = append(advice, rule.advice...)
		}
	}
	return advice
}
