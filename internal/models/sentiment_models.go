package models

// Prediction is the output contract of a text-classification capability.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentResult is the per-text output of the sentiment engine.
type SentimentResult struct {
	Sentiment   string             `json:"sentiment"`
	Score       float64            `json:"score"`
	Confidence  float64            `json:"confidence"`
	Emotions    map[string]float64 `json:"emotions"`
	KeyPhrases  []string           `json:"key_phrases"`
	OverallTone string             `json:"overall_tone"`
}

// Message is one entry of a conversation, oldest first.
type Message struct {
	Content string `json:"content"`
}

// KeyMoment marks a significant sentiment swing between consecutive scored
// messages. Index is the position of the later message in the original list,
// including unscored messages.
type KeyMoment struct {
	Index           int     `json:"index"`
	Message         string  `json:"message"`
	SentimentChange float64 `json:"sentiment_change"`
	NewSentiment    string  `json:"new_sentiment"`
}

type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// ConversationAnalysis aggregates per-message sentiment over a conversation.
type ConversationAnalysis struct {
	OverallSentiment      string                `json:"overall_sentiment"`
	SentimentTrend        string                `json:"sentiment_trend"`
	AverageSentiment      float64               `json:"average_sentiment"`
	SentimentChanges      int                   `json:"sentiment_changes"`
	KeyMoments            []KeyMoment           `json:"key_moments"`
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
}
