package leadscoring

import (
	"math"
	"strings"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

// FeatureSchema is the fixed, ordered feature layout. Training and
// prediction must agree on it exactly; artifacts recording a different
// schema are rejected at load time.
var FeatureSchema = []string{
	"has_email",
	"has_phone",
	"has_company",
	"has_job_title",
	"company_size_score",
	"source_score",
	"engagement_score",
	"budget_score",
	"timeline_score",
	"activity_count",
	"days_since_last_activity",
	"response_time_score",
}

var sourceScores = map[string]float64{
	"website":        0.7,
	"referral":       0.9,
	"cold_call":      0.3,
	"email_campaign": 0.6,
	"social_media":   0.5,
	"trade_show":     0.8,
	"partner":        0.9,
}

var timelineScores = map[string]float64{
	"immediate":       0.9,
	"within_30_days":  0.8,
	"within_90_days":  0.6,
	"within_6_months": 0.4,
	"no_timeline":     0.2,
}

var activityWeights = map[string]float64{
	"email":    0.3,
	"call":     0.5,
	"meeting":  0.8,
	"demo":     0.9,
	"proposal": 1.0,
}

const (
	defaultStaleDays        = 999
	defaultResponseHours    = 999
	budgetCeiling           = 100000
	unknownActivityWeight   = 0.1
	defaultSourceScore      = 0.5
	defaultTimelineScore    = 0.3
	defaultCompanySizeScore = 0.5
	defaultBudgetScore      = 0.5
)

// ExtractFeatures turns a lead record into the fixed-schema feature vector.
// It is deterministic and total: a missing field takes its documented
// default and extraction never fails.
func ExtractFeatures(lead models.LeadRecord) models.FeatureVector {
	features := make(models.FeatureVector, len(FeatureSchema))

	features["has_email"] = presenceFlag(lead.Email)
	features["has_phone"] = presenceFlag(lead.Phone)
	features["has_company"] = presenceFlag(lead.Company)
	features["has_job_title"] = presenceFlag(lead.JobTitle)

	features["company_size_score"] = companySizeScore(lead.Company)

	if score, ok := sourceScores[strings.ToLower(lead.Source)]; ok {
		features["source_score"] = score
	} else {
		features["source_score"] = defaultSourceScore
	}

	features["engagement_score"] = engagementScore(lead.Activities)

	// A zero budget deliberately reads as absent, matching the CRM contract.
	if lead.Budget != 0 {
		features["budget_score"] = math.Min(1.0, lead.Budget/budgetCeiling)
	} else {
		features["budget_score"] = defaultBudgetScore
	}

	if score, ok := timelineScores[strings.ToLower(lead.Timeline)]; ok {
		features["timeline_score"] = score
	} else {
		features["timeline_score"] = defaultTimelineScore
	}

	features["activity_count"] = lead.ActivityCount
	features["days_since_last_activity"] = valueOr(lead.DaysSinceLastActivity, defaultStaleDays)
	features["response_time_score"] = responseTimeScore(valueOr(lead.AvgResponseTimeHours, defaultResponseHours))

	return features
}

// Vectorize flattens a feature vector into FeatureSchema order.
func Vectorize(features models.FeatureVector) []float64 {
	vec := make([]float64, len(FeatureSchema))
	for i, name := range FeatureSchema {
		vec[i] = features[name]
	}
	return vec
}

// companySizeScore estimates company size from the name alone. The legal
// suffix tier is checked before the enterprise tier, so "Globex Enterprises
// Inc" lands on 0.8.
func companySizeScore(company string) float64 {
	name := strings.ToLower(company)
	if containsAny(name, "inc", "corp", "llc", "ltd") {
		return 0.8
	}
	if containsAny(name, "enterprise", "enterprises") {
		return 1.0
	}
	return defaultCompanySizeScore
}

// engagementScore is the activity-weight mean, capped at 1; no activities
// score 0.
func engagementScore(activities []models.Activity) float64 {
	if len(activities) == 0 {
		return 0.0
	}

	total := 0.0
	for _, activity := range activities {
		weight, ok := activityWeights[strings.ToLower(activity.Type)]
		if !ok {
			weight = unknownActivityWeight
		}
		total += weight
	}

	return math.Min(1.0, total/float64(len(activities)))
}

// responseTimeScore buckets average response hours; faster is better.
func responseTimeScore(hours float64) float64 {
	switch {
	case hours <= 1:
		return 1.0
	case hours <= 4:
		return 0.8
	case hours <= 24:
		return 0.6
	case hours <= 72:
		return 0.4
	default:
		return 0.2
	}
}

func presenceFlag(value string) float64 {
	if value != "" {
		return 1.0
	}
	return 0.0
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
