// Package ai talks to the llm that writes short exercise explanations.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rebld/rebldserver/internal/telemetry/tracing"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultModel = openai.GPT4oMini

var ErrEmptyCompletion = errors.New("llm returned no choices")

const explainPromptTemplate = `Exercise: "%s"

Be ULTRA CONCISE. Max 15 words per field. No fluff.

JSON format:
{
  "explanation": "One punchy sentence - what it does",
  "muscles_worked": ["Muscle1", "Muscle2"],
  "form_cue": "Key cue in 5-8 words",
  "common_mistake": "Mistake in 5-8 words"
}

RULES:
- explanation: 1 sentence, max 15 words
- form_cue: Action words, not explanation
- common_mistake: What NOT to do

Return ONLY valid JSON.`

type Explanation struct {
	Explanation   string   `json:"explanation"`
	MusclesWorked []string `json:"muscles_worked"`
	FormCue       *string  `json:"form_cue"`
	CommonMistake *string  `json:"common_mistake"`
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIExplainer struct {
	client chatCompleter
	model  string
}

// NewOpenAIExplainer sends its requests through httpClient, pass a traced one to get llm spans.
func NewOpenAIExplainer(apiKey, model string, httpClient *http.Client) *OpenAIExplainer {
	cfg := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = DefaultModel
	}
	return newOpenAIExplainer(openai.NewClientWithConfig(cfg), model)
}

func newOpenAIExplainer(client chatCompleter, model string) *OpenAIExplainer {
	return &OpenAIExplainer{
		client: client,
		model:  model,
	}
}

func (e *OpenAIExplainer) Explain(ctx context.Context, exerciseName string) (_ *Explanation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.openai.explain")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("llm.model", e.model),
		attribute.String("exercise", exerciseName),
	)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a strength and conditioning coach."},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(explainPromptTemplate, exerciseName)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	span.SetAttributes(attribute.Int("llm.tokens.total", resp.Usage.TotalTokens))

	return parseExplanation(resp.Choices[0].Message.Content)
}

// parseExplanation accepts the json bare or wrapped in a markdown code fence.
func parseExplanation(content string) (*Explanation, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	var explanation Explanation
	if err := json.Unmarshal([]byte(content), &explanation); err != nil {
		return nil, fmt.Errorf("unmarshal llm explanation: %w", err)
	}
	if explanation.Explanation == "" {
		return nil, errors.New("llm explanation empty")
	}
	if explanation.MusclesWorked == nil {
		explanation.MusclesWorked = []string{}
	}
	return &explanation, nil
}
