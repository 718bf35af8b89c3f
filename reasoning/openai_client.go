package reasoning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

var ErrEmptyCompletion = errors.New("reasoning backend returned no choices")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// requests per second, zero disables the limiter
	RateLimit float64
	Burst     int
	// ask the backend to respond with a json object
	JSONMode bool
}

// OpenAIClient talks to any OpenAI compatible chat completion endpoint.
type OpenAIClient struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	limiter  *rate.Limiter
	jsonMode bool
}

func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("no reasoning model configured")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	slog.Info("initializing reasoning backend", "model", cfg.Model, "baseURL", clientConfig.BaseURL)
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		limiter:  limiter,
		jsonMode: cfg.JSONMode,
	}, nil
}

// Run sends a single system + user turn and returns the raw content of the first choice.
func (c *OpenAIClient) Run(ctx context.Context, systemPrompt string, input string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("could not acquire rate limit token: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	}
	if c.jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("reasoning backend call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	slog.Debug("received completion", "model", c.model, "finishReason", resp.Choices[0].FinishReason, "duration", time.Since(start))
	return resp.Choices[0].Message.Content, nil
}
