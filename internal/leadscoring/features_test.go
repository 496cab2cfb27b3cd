package leadscoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s=%v, want %v", name, got, want)
	}
}

func strongLead() models.LeadRecord {
	fast := 1.0
	return models.LeadRecord{
		Email:                 "buyer@acme.com",
		Phone:                 "555-0100",
		Company:               "Acme Inc",
		JobTitle:              "VP Engineering",
		Source:                "referral",
		Budget:                150000,
		Timeline:              "immediate",
		Activities:            []models.Activity{{Type: "demo"}},
		ActivityCount:         1,
		AvgResponseTimeHours:  &fast,
		DaysSinceLastActivity: &fast,
	}
}

func TestExtractFeaturesReferralScenario(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures(strongLead())

	approx(t, "has_email", features["has_email"], 1.0)
	approx(t, "has_phone", features["has_phone"], 1.0)
	approx(t, "has_company", features["has_company"], 1.0)
	approx(t, "has_job_title", features["has_job_title"], 1.0)
	approx(t, "company_size_score", features["company_size_score"], 0.8)
	approx(t, "source_score", features["source_score"], 0.9)
	approx(t, "engagement_score", features["engagement_score"], 0.9)
	approx(t, "budget_score", features["budget_score"], 1.0)
	approx(t, "timeline_score", features["timeline_score"], 0.9)
	approx(t, "response_time_score", features["response_time_score"], 1.0)
}

func TestExtractFeaturesDefaults(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures(models.LeadRecord{})

	approx(t, "has_email", features["has_email"], 0.0)
	approx(t, "company_size_score", features["company_size_score"], 0.5)
	approx(t, "source_score", features["source_score"], 0.5)
	approx(t, "engagement_score", features["engagement_score"], 0.0)
	approx(t, "budget_score", features["budget_score"], 0.5)
	approx(t, "timeline_score", features["timeline_score"], 0.3)
	approx(t, "activity_count", features["activity_count"], 0.0)
	approx(t, "days_since_last_activity", features["days_since_last_activity"], 999)
	approx(t, "response_time_score", features["response_time_score"], 0.2)
}

func TestExtractFeaturesIsDeterministic(t *testing.T) {
	t.Parallel()

	lead := strongLead()
	first := ExtractFeatures(lead)
	second := ExtractFeatures(lead)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("feature extraction not deterministic:\n%v\n%v", first, second)
	}
}

func TestExtractFeaturesCoversSchema(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures(models.LeadRecord{})
	if len(features) != len(FeatureSchema) {
		t.Fatalf("extracted %d features, schema has %d", len(features), len(FeatureSchema))
	}
	for _, name := range FeatureSchema {
		if _, ok := features[name]; !ok {
			t.Fatalf("schema feature %q missing from extraction", name)
		}
	}
}

func TestCompanySizeScoreTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		company string
		want    float64
	}{
		{"Acme Inc", 0.8},
		{"Initech LLC", 0.8},
		{"Globex Enterprises", 1.0},
		{"Globex Enterprises Inc", 0.8}, // legal suffix wins over enterprise tier
		{"Sirius Cybernetics", 0.5},
		{"", 0.5},
	}

	for _, tc := range cases {
		if got := companySizeScore(tc.company); got != tc.want {
			t.Fatalf("companySizeScore(%q)=%v, want %v", tc.company, got, tc.want)
		}
	}
}

func TestEngagementScore(t *testing.T) {
	t.Parallel()

	if got := engagementScore(nil); got != 0.0 {
		t.Fatalf("no activities should score 0, got %v", got)
	}

	activities := []models.Activity{{Type: "email"}, {Type: "proposal"}, {Type: "carrier_pigeon"}}
	got := engagementScore(activities)
	want := (0.3 + 1.0 + 0.1) / 3
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("engagementScore=%v, want %v", got, want)
	}
}

func TestResponseTimeScoreBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hours float64
		want  float64
	}{
		{0.5, 1.0}, {1, 1.0}, {4, 0.8}, {24, 0.6}, {72, 0.4}, {200, 0.2}, {999, 0.2},
	}
	for _, tc := range cases {
		if got := responseTimeScore(tc.hours); got != tc.want {
			t.Fatalf("responseTimeScore(%v)=%v, want %v", tc.hours, got, tc.want)
		}
	}
}

func TestZeroBudgetReadsAsAbsent(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures(models.LeadRecord{Budget: 0})
	approx(t, "budget_score", features["budget_score"], 0.5)

	features = ExtractFeatures(models.LeadRecord{Budget: 50000})
	approx(t, "budget_score", features["budget_score"], 0.5)

	features = ExtractFeatures(models.LeadRecord{Budget: 250000})
	approx(t, "budget_score", features["budget_score"], 1.0)
}

func TestVectorizeFollowsSchemaOrder(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures(strongLead())
	vec := Vectorize(features)
	if len(vec) != len(FeatureSchema) {
		t.Fatalf("vector length %d, want %d", len(vec), len(FeatureSchema))
	}
	for i, name := range FeatureSchema {
		if vec[i] != features[name] {
			t.Fatalf("vec[%d]=%v, want %s=%v", i, vec[i], name, features[name])
		}
	}
}
