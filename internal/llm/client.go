package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"navmind/internal/domain/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrMissingAPIKey is returned by every call of a client built without credentials.
var ErrMissingAPIKey = errors.New("llm: GROQ_API_KEY is not set")

// Prompt is the single call contract with the model:
// persona, task description, expected output shape and prior-task context.
type Prompt struct {
	Agent          models.Agent
	Description    string
	ExpectedOutput string
	Context        []string
}

// Completer turns a Prompt into free-form text.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// Config carries the process-wide LLM settings, read once at startup.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

// LangChainClient adapts a langchaingo model to Completer.
type LangChainClient struct {
	model       llms.Model
	temperature float64
}

// NewLangChainClient wraps an existing langchaingo model.
func NewLangChainClient(model llms.Model, temperature float64) *LangChainClient {
	return &LangChainClient{model: model, temperature: temperature}
}

// NewGroqClient builds a client against Groq's OpenAI-compatible endpoint.
// Without an API key the returned client fails every call with ErrMissingAPIKey.
func NewGroqClient(cfg Config) (Completer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return missingKeyClient{}, nil
	}
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq model: %w", err)
	}
	return NewLangChainClient(model, cfg.Temperature), nil
}

// Complete implements Completer.
func (c *LangChainClient) Complete(ctx context.Context, p Prompt) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, RenderSystemPrompt(p.Agent)),
		llms.TextParts(llms.ChatMessageTypeHuman, RenderTaskPrompt(p)),
	}

	resp, err := c.model.GenerateContent(ctx, messages, llms.WithTemperature(c.temperature))
	if err != nil {
		return "", fmt.Errorf("langchain GenerateContent failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}
	return resp.Choices[0].Content, nil
}

type missingKeyClient struct{}

func (missingKeyClient) Complete(context.Context, Prompt) (string, error) {
	return "", ErrMissingAPIKey
}
