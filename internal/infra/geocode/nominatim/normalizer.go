package nominatim

import (
	"context"
	"fmt"
	"strings"

	"github.com/vedicworks/muhurat-api/internal/infra/llm/openai"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

const normalizePrompt = `Rewrite the given place description as a single geocodable string in the form "City, State, Country".
Respond with only that string, no quotes, no explanation.`

// completer is the slice of the OpenAI client the normalizer needs.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMNormalizer implements PlaceNormalizer with a chat completion model.
type LLMNormalizer struct {
	client      completer
	model       string
	temperature float32
}

// NewLLMNormalizer builds the normalizer.
func NewLLMNormalizer(client completer, model string, temperature float32) *LLMNormalizer {
	return &LLMNormalizer{client: client, model: model, temperature: temperature}
}

// NormalizePlace asks the model for a cleaned-up place string.
func (n *LLMNormalizer) NormalizePlace(ctx context.Context, place string) (string, error) {
	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       n.model,
		Temperature: n.temperature,
		Messages: []openai.Message{
			{Role: "system", Content: normalizePrompt},
			{Role: "user", Content: place},
		},
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeLLMError, "place normalization failed", err)
	}
	normalized := strings.TrimSpace(strings.Trim(resp.Content(), `"`))
	if normalized == "" {
		return "", apperrors.Wrap(apperrors.CodeLLMError, fmt.Sprintf("empty model response for %q", place), nil)
	}
	return normalized, nil
}

var _ PlaceNormalizer = (*LLMNormalizer)(nil)
