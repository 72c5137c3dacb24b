package validator

import (
	"context"
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
)

// chatCompleter talks to an OpenAI-compatible chat completions endpoint,
// which covers both OpenRouter and OpenAI.
type chatCompleter struct {
	client oai.Client
	model  string
}

func newChatCompleter(cfg config.ValidatorConfig, extra ...option.RequestOption) *chatCompleter {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKeys[0])}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	opts = append(opts, extra...)

	return &chatCompleter{
		client: oai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *chatCompleter) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{oai.UserMessage(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
