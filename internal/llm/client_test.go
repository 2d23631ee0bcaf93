package llm

import (
	"context"
	"errors"
	"testing"

	"navmind/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (m *stubModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, o := range options {
		o(&m.opts)
	}
	return m.resp, m.err
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func samplePrompt() Prompt {
	return Prompt{
		Agent: models.Agent{
			Role:      "Budget Planner Agent",
			Goal:      "Keep costs down.",
			Backstory: "A frugal traveller.",
		},
		Description:    "Estimate the budget.",
		ExpectedOutput: "A markdown table.",
		Context:        []string{"Day 1: Alfama"},
	}
}

func TestLangChainClientComplete(t *testing.T) {
	model := &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "| Item | Cost |"}}}}
	client := NewLangChainClient(model, 0.1)

	out, err := client.Complete(context.Background(), samplePrompt())
	require.NoError(t, err)
	assert.Equal(t, "| Item | Cost |", out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	assert.InDelta(t, 0.1, model.opts.Temperature, 1e-9)

	user, ok := model.messages[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, user.Text, "Estimate the budget.")
	assert.Contains(t, user.Text, "Day 1: Alfama")
}

func TestLangChainClientErrors(t *testing.T) {
	boom := errors.New("rate limited")
	_, err := NewLangChainClient(&stubModel{err: boom}, 0).Complete(context.Background(), samplePrompt())
	require.ErrorIs(t, err, boom)

	_, err = NewLangChainClient(&stubModel{resp: &llms.ContentResponse{}}, 0).Complete(context.Background(), samplePrompt())
	require.Error(t, err)
}

func TestNewGroqClientWithoutKey(t *testing.T) {
	client, err := NewGroqClient(Config{Model: "llama-3.3-70b-versatile"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), samplePrompt())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewGroqClientWithKey(t *testing.T) {
	client, err := NewGroqClient(Config{
		APIKey:      "gsk_test",
		Model:       "llama-3.3-70b-versatile",
		BaseURL:     "http://127.0.0.1:1/openai/v1",
		Temperature: 0.1,
	})
	require.NoError(t, err)
	_, ok := client.(*LangChainClient)
	assert.True(t, ok)
}

func TestRenderPrompts(t *testing.T) {
	p := samplePrompt()

	sys := RenderSystemPrompt(p.Agent)
	assert.Contains(t, sys, "You are Budget Planner Agent.")
	assert.Contains(t, sys, "Your personal goal is: Keep costs down.")

	task := RenderTaskPrompt(p)
	assert.Contains(t, task, "Current Task: Estimate the budget.")
	assert.Contains(t, task, "expected criteria for your final answer: A markdown table.")
	assert.Contains(t, task, "This is the context you're working with:\nDay 1: Alfama")

	p.Context = []string{"  "}
	assert.NotContains(t, RenderTaskPrompt(p), "context you're working with")
}

func TestLangChainClientSendsZeroTemperature(t *testing.T) {
	model := &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}}
	model.opts.Temperature = -1

	_, err := NewLangChainClient(model, 0).Complete(context.Background(), samplePrompt())
	require.NoError(t, err)
	assert.Zero(t, model.opts.Temperature)
}
