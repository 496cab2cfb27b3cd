package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

const (
	openAIRequestTimeout = 60 * time.Second
	classifierModel      = openai.ChatModelGPT4oMini

	classifierSystemPrompt = `You are a sentiment classifier. Reply with only a JSON object of the form {"label": "positive"|"negative"|"neutral", "score": <confidence between 0 and 1>}.`
)

// OpenAIClassifier asks a hosted chat model to label text, for deployments
// that prefer a managed classifier over local pipelines.
type OpenAIClassifier struct {
	client openai.Client
}

func NewOpenAIClassifier() (*OpenAIClassifier, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY in environment")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
	)

	return &OpenAIClassifier{client: client}, nil
}

func (o *OpenAIClassifier) Classify(ctx context.Context, text string) (models.Prediction, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: classifierModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifierSystemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return models.Prediction{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Prediction{}, fmt.Errorf("empty completion response")
	}

	var prediction models.Prediction
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &prediction); err != nil {
		return models.Prediction{}, fmt.Errorf("decode classifier response: %w", err)
	}
	return prediction, nil
}
