package sentiment

import (
	"math"
	"strings"
	"testing"
)

func TestExtractEmotions(t *testing.T) {
	t.Parallel()

	emotions := ExtractEmotions("I am happy and excited, absolutely thrilled")

	if len(emotions) != len(EmotionCategories) {
		t.Fatalf("got %d categories, want %d", len(emotions), len(EmotionCategories))
	}
	for _, category := range EmotionCategories {
		if _, ok := emotions[category]; !ok {
			t.Fatalf("category %q missing", category)
		}
	}

	// happy, excited and thrilled are three joy keywords.
	if math.Abs(emotions["joy"]-0.6) > 1e-9 {
		t.Fatalf("joy=%v, want 0.6", emotions["joy"])
	}
	// excited also counts toward anticipation.
	if math.Abs(emotions["anticipation"]-0.2) > 1e-9 {
		t.Fatalf("anticipation=%v, want 0.2", emotions["anticipation"])
	}
	if emotions["anger"] != 0 {
		t.Fatalf("anger=%v, want 0", emotions["anger"])
	}
}

func TestExtractEmotionsIntensityCap(t *testing.T) {
	t.Parallel()

	emotions := ExtractEmotions("happy joy excited thrilled delighted pleased")
	if emotions["joy"] != 1.0 {
		t.Fatalf("joy=%v, want capped at 1.0", emotions["joy"])
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	t.Parallel()

	text := "There is a problem with my order. Thanks a lot. I want a refund now!"
	phrases := ExtractKeyPhrases(text)

	want := []string{
		"There is a problem with my order",
		"I want a refund now",
	}
	if len(phrases) != len(want) {
		t.Fatalf("phrases=%v, want %v", phrases, want)
	}
	for i := range want {
		if phrases[i] != want[i] {
			t.Fatalf("phrases[%d]=%q, want %q", i, phrases[i], want[i])
		}
	}
}

func TestExtractKeyPhrasesSkipsShortFragments(t *testing.T) {
	t.Parallel()

	// Touches a topic keyword but is ten characters or fewer.
	phrases := ExtractKeyPhrases("my order.")
	if len(phrases) != 0 {
		t.Fatalf("phrases=%v, want none", phrases)
	}
}

func TestExtractKeyPhrasesCapped(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("Another problem with the account today. ", 8)
	phrases := ExtractKeyPhrases(text)
	if len(phrases) != 5 {
		t.Fatalf("got %d phrases, want cap of 5", len(phrases))
	}
}

func TestOverallTone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label    string
		score    float64
		emotions map[string]float64
		want     string
	}{
		{LabelPositive, 0.8, map[string]float64{"joy": 0.6}, "very_positive_joy"},
		{LabelPositive, 0.8, map[string]float64{"joy": 0.2}, "very_positive"},
		{LabelPositive, 0.6, map[string]float64{"joy": 0.9}, "positive"},
		{LabelNegative, 0.9, map[string]float64{"anger": 0.8}, "very_negative_anger"},
		{LabelNegative, 0.5, nil, "negative"},
		{LabelNeutral, 0.9, map[string]float64{"joy": 0.9}, "neutral"},
	}
	for _, tc := range cases {
		if got := OverallTone(tc.label, tc.score, tc.emotions); got != tc.want {
			t.Fatalf("OverallTone(%s, %v)=%q, want %q", tc.label, tc.score, got, tc.want)
		}
	}
}

func TestDominantEmotionOrderIsStable(t *testing.T) {
	t.Parallel()

	// joy precedes trust in the category order; equal intensities resolve to joy.
	dominant, intensity := dominantEmotion(map[string]float64{"trust": 0.6, "joy": 0.6})
	if dominant != "joy" || intensity != 0.6 {
		t.Fatalf("dominant=%q intensity=%v, want joy 0.6", dominant, intensity)
	}
}
