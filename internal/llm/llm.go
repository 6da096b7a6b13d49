// Package llm talks to an OpenAI-compatible chat API to generate worksheet
// payloads and to rewrite texts toward a word target.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/sanitize"
)

const (
	generateTemperature = 0.4
	rewriteTemperature  = 0.2
)

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a new LLM client. An empty baseURL keeps the default
// OpenAI endpoint.
func New(baseURL, apiKey, modelName string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(config),
		model: modelName,
	}
}

// Generate asks the model for the full worksheet payload and returns it
// decoded but unsanitized. Malformed JSON from the model is an error here;
// shape problems inside valid JSON are the sanitizer's job.
func (c *Client) Generate(ctx context.Context, req model.GenerateRequest, source string, wordTarget int) (map[string]any, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildGenerateSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: buildGenerateUserPrompt(req, source, wordTarget)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	slog.Debug("LLM generation response", "bytes", len(raw))

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}
	return payload, nil
}

// Rewrite asks the model to compress or expand a text into the constraint
// window. A response that is not the expected JSON keeps the current text;
// API errors propagate.
func (c *Client) Rewrite(ctx context.Context, text string, cons enforce.Constraints) (string, error) {
	words := sanitize.CountWords(text)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildRewriteSystemPrompt(cons)},
			{Role: openai.ChatMessageRoleUser, Content: buildRewriteUserPrompt(text, cons, words)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: rewriteTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM rewrite API call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return text, nil
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil || out.Text == "" {
		return text, nil
	}
	return out.Text, nil
}

// Ping checks that the API endpoint is reachable and the key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("LLM endpoint unreachable: %w", err)
	}
	return nil
}
