// Package llm implements the narrative generator against the Groq
// chat-completions API (OpenAI-compatible wire format).
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const (
	groqBaseURL  = "https://api.groq.com/openai/v1"
	DefaultModel = "llama-3.3-70b-versatile"
)

// GroqGenerator sends a two-turn exchange (system + user) to Groq and returns
// the first completion verbatim. Calls block for their full duration; there is
// no retry and no timeout beyond the HTTP client default.
type GroqGenerator struct {
	client *openai.Client
	model  string
	apiKey string
	logger zerolog.Logger
}

func NewGroqGenerator(apiKey, model string, logger zerolog.Logger) *GroqGenerator {
	if model == "" {
		model = DefaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL

	return &GroqGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		apiKey: apiKey,
		logger: logger,
	}
}

func (g *GroqGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: GROQ_API_KEY not configured", domain.ErrReportGeneration)
	}

	started := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req)},
		},
	})
	metrics.NarrativeRequestDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrReportGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrReportGeneration)
	}

	g.logger.Debug().
		Str("model", g.model).
		Dur("elapsed", time.Since(started)).
		Int("symptoms", len(req.Symptoms)).
		Int("medications", len(req.Medications)).
		Msg("narrative generated")

	return resp.Choices[0].Message.Content, nil
}
