// Package completion provides the text-generation client used by the
// interaction pipeline. It wraps the OpenAI chat completions API with the
// configured model, output bound, and sampling temperature.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/solwyn/aura/internal/config"
)

// FallbackReply is substituted when the provider returns no usable text.
// Providers may legitimately return empty completions; the pipeline must
// still produce a non-empty reply.
const FallbackReply = "I'm sorry, I couldn't process your request at this time."

// ErrUnavailable indicates a transport failure, timeout, or provider-side
// error. No retry happens here; retry policy belongs to the deployment.
var ErrUnavailable = errors.New("generation provider unavailable")

// Client executes single-shot chat completions.
type Client interface {
	// Complete sends the system prompt and user message to the provider
	// and returns the first generated text segment, or FallbackReply when
	// the provider produced no usable text.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type client struct {
	api         *openai.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

// New creates a completion client from the provider configuration.
func New(cfg *config.ProviderConfig, logger *slog.Logger) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// retry policy belongs to the deployment, not this client
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	api := openai.NewClient(opts...)

	return &client{
		api:         &api,
		model:       cfg.Model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.TimeoutDuration(),
		logger:      logger.With("system", "completion"),
	}
}

func (c *client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		c.logger.Error("completion request failed", "model", c.model, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(result.Choices) == 0 {
		return FallbackReply, nil
	}
	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return FallbackReply, nil
	}
	return text, nil
}
