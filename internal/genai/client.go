// Package genai wraps an OpenAI-compatible chat completion endpoint as a
// plain prompt-in, text-out model.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

var (
	// ErrMissingCredential is returned by every call when no API key is configured.
	ErrMissingCredential = errors.New("generative model: missing API key")
	// ErrEmptyCompletion is returned when the model sends back no choices.
	ErrEmptyCompletion = errors.New("generative model: empty completion")
)

// Client is built once at start-up and shared for the whole process.
type Client struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

// Options configures the model endpoint.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  zerolog.Logger
}

func NewClient(opts Options) *Client {
	c := &Client{
		model:  opts.Model,
		logger: opts.Logger.With().Str("component", "genai").Logger(),
	}
	// Only create the OpenAI client when a key is present
	if opts.APIKey != "" {
		clientConfig := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			clientConfig.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
		}
		c.client = openai.NewClientWithConfig(clientConfig)
	}
	return c
}

// Ready reports whether calls can reach the model.
func (c *Client) Ready() bool {
	return c.client != nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate submits prompt as a single user message and returns the text of
// the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrMissingCredential
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("completion received")

	return resp.Choices[0].Message.Content, nil
}
