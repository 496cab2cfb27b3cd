package sentiment

import (
	"regexp"
	"strings"
)

var topicKeywords = []string{
	"problem", "issue", "concern", "complaint", "request", "question",
	"help", "support", "service", "product", "price", "quality",
	"delivery", "refund", "cancel", "order", "payment", "account",
}

var sentenceTerminators = regexp.MustCompile(`[.!?]`)

const (
	maxKeyPhrases      = 5
	minKeyPhraseLength = 10
)

// ExtractKeyPhrases returns up to five sentences that touch a topic keyword,
// in original order, skipping fragments of ten characters or fewer.
func ExtractKeyPhrases(text string) []string {
	sentences := sentenceTerminators.Split(text, -1)

	var phrases []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, kw := range topicKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			trimmed := strings.TrimSpace(sentence)
			if len(trimmed) > minKeyPhraseLength {
				phrases = append(phrases, trimmed)
			}
			break
		}
		if len(phrases) == maxKeyPhrases {
			break
		}
	}

	return phrases
}
