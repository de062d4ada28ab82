// Package ai provides the OpenAI-backed completion client and the
// prompt set used by the resume pipeline.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4.1-mini"

// Sentinel errors for completion operations.
var (
	ErrNoAPIKey      = errors.New("OPENAI_API_KEY is not set")
	ErrEmptyResponse = errors.New("model returned no choices")
)

// Client calls the OpenAI chat completions API.
type Client struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewClient creates a Client for the given API key and model. An empty
// model selects DefaultModel. The key is validated lazily so callers
// that only run the offline pipeline never need one.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &c, apiKey: apiKey, model: model}
}

// Model returns the configured chat model name.
func (c *Client) Model() string { return c.model }

// Complete sends one system/user prompt pair and returns the model's
// text output.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
