// File: pkg/chat/chat.go

// Package chat assembles the prompt messages and streams the model's reply.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// APIKeyEnvVars are checked in order for the completion-provider credential.
var APIKeyEnvVars = []string{"MANUS_API_KEY", "OPENAI_API_KEY"}

// APIKey returns the API key from the environment. The key is required before
// any scan starts so a missing credential fails fast.
func APIKey() (string, error) {
	for _, name := range APIKeyEnvVars {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}
	return "", errors.New("API key not found: set MANUS_API_KEY or OPENAI_API_KEY")
}

// BuildMessages produces the two-message conversation sent to the model: the
// system prompt with the project context appended, and the user's prompt.
func BuildMessages(systemPrompt, contextBlock, userPrompt string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt + "\n\nPROJECT CONTEXT:\n" + contextBlock,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userPrompt,
		},
	}
}

// Client streams chat completions from the provider.
type Client struct {
	api    *openai.Client
	logger *zap.Logger
}

// NewClient builds a streaming client authenticated with apiKey.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{api: openai.NewClient(apiKey), logger: logger}
}

// Stream sends the messages to model and writes reply deltas to out as they
// arrive. It returns once the provider closes the stream.
func (c *Client) Stream(ctx context.Context, model string, messages []openai.ChatCompletionMessage, out io.Writer) error {
	c.logger.Debug("Starting completion stream", zap.String("model", model), zap.Int("messages", len(messages)))

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to start completion stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			c.logger.Debug("Completion stream finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("completion stream failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if _, err := io.WriteString(out, resp.Choices[0].Delta.Content); err != nil {
			return fmt.Errorf("failed to write response chunk: %w", err)
		}
	}
}
