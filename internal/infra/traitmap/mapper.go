// Package traitmap maps free-text quality descriptions onto the canonical
// trait list with an LLM. Every failure path degrades to an empty trait list
// so a suggestion request never fails because the oracle is unavailable.
package traitmap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/infra/llm/openai"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

const promptEncoding = "cl100k_base"

const systemPrompt = `You classify a parent's wishes for their child into canonical traits.
Valid traits: health, intelligence, wealth, leadership, spiritual, creativity, stability, compassion, courage.
Respond with a JSON array of at most 3 trait strings, most important first. Respond with [] when nothing matches.`

// completer is the slice of the OpenAI client the mapper needs.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Mapper implements muhurat.TraitMapper on top of a chat completion model.
type Mapper struct {
	client      completer
	model       string
	temperature float32
	maxTokens   int
	encoder     *tiktoken.Tiktoken
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// New constructs the mapper. A failed encoder load is not fatal; the
// mapper falls back to an approximate rune budget for truncation.
func New(client completer, model string, temperature float32, maxPromptTokens int, m *metrics.Metrics, logger *slog.Logger) (*Mapper, error) {
	if client == nil {
		return nil, fmt.Errorf("traitmap: completion client is required")
	}
	encoder, err := tiktoken.GetEncoding(promptEncoding)
	if err != nil {
		logger.Warn("failed to load token encoding, using rune budget", "encoding", promptEncoding, "error", err)
		encoder = nil
	}
	return &Mapper{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxPromptTokens,
		encoder:     encoder,
		metrics:     m,
		logger:      logger.With("component", "traitmap"),
	}, nil
}

// MapTraits classifies the text. It never returns an error.
func (m *Mapper) MapTraits(ctx context.Context, text string) []muhurat.Trait {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: m.temperature,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: m.truncate(text)},
		},
	})
	if err != nil {
		m.degrade("trait mapping call failed", err)
		return nil
	}

	traits, err := parseTraits(resp.Content())
	if err != nil {
		m.degrade("trait mapping response unparseable", err)
		return nil
	}
	return traits
}

// truncate trims the user text to the configured token budget. Without an
// encoder the budget is approximated at four runes per token.
func (m *Mapper) truncate(text string) string {
	if m.encoder == nil {
		runes := []rune(text)
		if limit := m.maxTokens * 4; len(runes) > limit {
			return string(runes[:limit])
		}
		return text
	}
	tokens := m.encoder.Encode(text, nil, nil)
	if len(tokens) <= m.maxTokens {
		return text
	}
	return m.encoder.Decode(tokens[:m.maxTokens])
}

func (m *Mapper) degrade(msg string, err error) {
	m.metrics.TraitOracleErrs.Inc()
	m.logger.Warn(msg, "error", err)
}

// parseTraits extracts a JSON string array, tolerating markdown code fences
// and surrounding prose.
func parseTraits(content string) ([]muhurat.Trait, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in %q", content)
	}
	var raw []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode trait array: %w", err)
	}
	return muhurat.NormalizeTraits(raw), nil
}

var _ muhurat.TraitMapper = (*Mapper)(nil)
