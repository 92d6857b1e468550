package traitmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/infra/llm/openai"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

type scriptedCompleter struct {
	content string
	err     error
	prompt  string
}

func (s *scriptedCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if len(req.Messages) > 0 {
		s.prompt = req.Messages[len(req.Messages)-1].Content
	}
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	var resp openai.ChatCompletionResponse
	resp.Choices = []struct {
		Message openai.Message `json:"message"`
	}{{Message: openai.Message{Role: "assistant", Content: s.content}}}
	return resp, nil
}

func newMapper(t *testing.T, client completer, maxTokens int) (*Mapper, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mapper, err := New(client, "gpt-4o-mini", 0.1, maxTokens, m, logger)
	require.NoError(t, err)
	return mapper, m
}

func TestMapTraitsParsesArray(t *testing.T) {
	mapper, _ := newMapper(t, &scriptedCompleter{content: `["health", "courage"]`}, 1024)

	got := mapper.MapTraits(context.Background(), "a brave and healthy child")
	require.Equal(t, []muhurat.Trait{muhurat.TraitHealth, muhurat.TraitCourage}, got)
}

func TestMapTraitsToleratesFences(t *testing.T) {
	content := "Here you go:\n```json\n[\"spiritual\", \"bogus\", \"spiritual\"]\n```"
	mapper, _ := newMapper(t, &scriptedCompleter{content: content}, 1024)

	got := mapper.MapTraits(context.Background(), "a calm temple-going child")
	require.Equal(t, []muhurat.Trait{muhurat.TraitSpiritual}, got)
}

func TestMapTraitsDegradesOnError(t *testing.T) {
	mapper, m := newMapper(t, &scriptedCompleter{err: errors.New("rate limited")}, 1024)

	require.Nil(t, mapper.MapTraits(context.Background(), "anything"))
	require.Equal(t, 1.0, testutil.ToFloat64(m.TraitOracleErrs))
}

func TestMapTraitsDegradesOnGarbage(t *testing.T) {
	mapper, m := newMapper(t, &scriptedCompleter{content: "I cannot help with that."}, 1024)

	require.Nil(t, mapper.MapTraits(context.Background(), "anything"))
	require.Equal(t, 1.0, testutil.ToFloat64(m.TraitOracleErrs))
}

func TestMapTraitsSkipsEmptyText(t *testing.T) {
	client := &scriptedCompleter{content: `["health"]`}
	mapper, _ := newMapper(t, client, 1024)

	require.Nil(t, mapper.MapTraits(context.Background(), "   "))
	require.Empty(t, client.prompt, "the oracle must not be called")
}

func TestMapTraitsTruncatesPrompt(t *testing.T) {
	client := &scriptedCompleter{content: `[]`}
	mapper, _ := newMapper(t, client, 8)

	long := strings.Repeat("brave healthy wise calm ", 50)
	mapper.MapTraits(context.Background(), long)
	require.NotEmpty(t, client.prompt)
	require.Less(t, len(client.prompt), len(long))
}
