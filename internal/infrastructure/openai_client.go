package infrastructure

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"project_cloudi/internal/config"
)

// systemPrompt pins the assistant persona and tone for every fallback call.
const systemPrompt = "You're Cloudi ☁️, a friendly AI assistant helping with academic, career, and personal guidance. Keep responses helpful and under 200 words."

// Degraded-service messages returned in place of provider failures. The
// pipeline never sees an error from the generator, only one of these.
const (
	MsgRateLimited    = "I'm getting lots of questions right now! Please try again in a moment. ☁️"
	MsgInvalidRequest = "I didn't quite understand that. Could you rephrase your question? 🤔"
	MsgGenericError   = "Oops! I'm having trouble thinking right now. Please try again! ☁️💤"
)

// FailureKind classifies a provider error so tests can inspect which class of
// failure produced which degraded message.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureRateLimit
	FailureInvalidRequest
	FailureUnknown
)

// completer is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it; tests inject fakes.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator wraps chat completions behind the Generator port.
type OpenAIGenerator struct {
	client      completer
	model       string
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

func NewOpenAIGenerator(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		logger:      logger,
	}
}

// Generate asks the provider for an answer to prompt. Any failure degrades to
// a fixed user-facing message instead of propagating.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) string {
	answer, kind := g.generate(ctx, prompt)
	switch kind {
	case FailureNone:
		return answer
	case FailureRateLimit:
		return MsgRateLimited
	case FailureInvalidRequest:
		return MsgInvalidRequest
	default:
		return MsgGenericError
	}
}

func (g *OpenAIGenerator) generate(ctx context.Context, prompt string) (string, FailureKind) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		kind := classifyErr(err)
		g.logger.Error("chat completion failed", zap.Error(err), zap.Int("kind", int(kind)))
		return "", kind
	}
	if len(resp.Choices) == 0 {
		g.logger.Error("chat completion returned no choices")
		return "", FailureUnknown
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), FailureNone
}

func classifyErr(err error) FailureKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return FailureRateLimit
		case http.StatusBadRequest:
			return FailureInvalidRequest
		}
	}
	return FailureUnknown
}
