// Package generation produces the final answer text with a chat model
// behind an OpenAI-compatible API.
package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
	"github.com/Ozerg97/nestle-chat-bot/internal/metrics"
)

// Config configures the generation client
type Config struct {
	BaseURL       string
	APIKey        string
	Model         string
	AssistantName string
	Timeout       time.Duration
	// RequestsPerMinute caps outbound model calls; 0 disables the limit
	RequestsPerMinute int
	// MaxAttempts bounds calls per answer, retrying only 429 and 5xx; 0 means one
	MaxAttempts int
}

// Client implements domain.Generator
type Client struct {
	client        *openai.Client
	model         string
	assistantName string
	rateLimiter   *rate.Limiter
	maxAttempts   int
	backoff       time.Duration
	metrics       *metrics.Metrics
	logger        zerolog.Logger
}

// NewClient creates a generation client
func NewClient(cfg Config, m *metrics.Metrics, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), cfg.RequestsPerMinute/10+1)
	}

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	assistant := cfg.AssistantName
	if assistant == "" {
		assistant = "catalog assistant"
	}

	return &Client{
		client:        openai.NewClientWithConfig(config),
		model:         cfg.Model,
		assistantName: assistant,
		rateLimiter:   limiter,
		maxAttempts:   attempts,
		backoff:       500 * time.Millisecond,
		metrics:       m,
		logger:        logger.With().Str("component", "generation").Logger(),
	}
}

// Generate asks the model for an answer. Failures are returned as a visible
// "Error generating response: ..." string instead of an error.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) string {
	text, err := c.complete(ctx, BuildPrompt(c.assistantName, req))
	if err != nil {
		c.metrics.IncGenerationFailure()
		c.logger.Error().Err(err).Msg("generation failed")
		return fmt.Sprintf("Error generating response: %v", err)
	}
	return text
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		resp, err := c.client.CreateChatCompletion(ctx, request)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", domain.ErrGenerationFailure, err)
			if !retryable(err) || attempt == c.maxAttempts {
				break
			}
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying generation")
			if err := sleep(ctx, time.Duration(attempt)*c.backoff); err != nil {
				return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailure, err)
			}
			continue
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: empty response", domain.ErrGenerationFailure)
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		c.logger.Debug().
			Int("attempt", attempt).
			Int("prompt_tokens", resp.Usage.PromptTokens).
			Int("completion_tokens", resp.Usage.CompletionTokens).
			Msg("generation done")
		return text, nil
	}

	return "", lastErr
}

// retryable reports whether the error is a throttling or server-side failure
func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
