// Package provider executes streaming model calls against two
// interchangeable OpenAI-compatible backends with per-session rate-limit
// failover.
package provider

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one chat turn sent to a backend.
type Message struct {
	Role    string
	Content string
}

// Backend is one streaming text-generation endpoint. Implementations
// call fn for every text increment in arrival order.
type Backend interface {
	Name() string
	Stream(ctx context.Context, messages []Message, fn func(delta string) error) error
}

// OpenAIBackend streams chat completions from any OpenAI-compatible API.
type OpenAIBackend struct {
	name   string
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds a backend for the given endpoint. baseURL may
// be empty for the default OpenAI endpoint.
func NewOpenAIBackend(name, apiKey, baseURL, model string) *OpenAIBackend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIBackend{
		name:   name,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (b *OpenAIBackend) Name() string {
	return b.name
}

func (b *OpenAIBackend) Stream(ctx context.Context, messages []Message, fn func(delta string) error) error {
	req := openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		MaxTokens:   4096,
		Temperature: 0.4,
		TopP:        0.8,
		Stream:      true,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	stream, err := b.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := fn(delta); err != nil {
				return err
			}
		}
	}
}
