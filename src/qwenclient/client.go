// Package qwenclient talks to the DashScope compatible-mode chat-completions
// endpoint. One request per exchange: no retries, no backoff, no streaming.
package qwenclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"chatpal/src/config"
	"chatpal/src/conversation"
)

const (
	defaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	completionPath = "/chat/completions"
	defaultTimeout = 30 * time.Second
)

// Config holds the construction options for the client.
type Config struct {
	// BaseURL overrides the endpoint, mainly for tests.
	BaseURL string
	// Logger receives request instrumentation. Defaults to slog.Default.
	Logger *slog.Logger
}

// Client is the chat-completions API client. Construct once and reuse; the
// underlying http.Client pools connections across exchanges.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a new chat-completions client with the fixed 30-second
// socket timeout.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With("component", "qwen_client"),
		baseURL:    cfg.BaseURL,
	}
}

// Ask sends the entire current turn sequence to the model and returns the
// reply text and total token usage. Exactly one attempt is made; every
// failure mode maps to a typed error and is left to the caller to recover.
func (c *Client) Ask(ctx context.Context, turns []conversation.Turn, cfg *config.BotConfig) (string, int, error) {
	logger := c.logger.With("model", cfg.Model, "turns", len(turns))
	logger.Debug("sending chat completion request")

	reqBody := ChatRequest{
		Model:          cfg.Model,
		Messages:       turns,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		EnableThinking: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		logger.Error("failed to marshal request", "error", err)
		return "", 0, &TransportError{Op: "marshal", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionPath, bytes.NewReader(body))
	if err != nil {
		return "", 0, &TransportError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("request failed", "error", err)
		return "", 0, &TransportError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		logger.Error("received error response", "status_code", resp.StatusCode)
		return "", 0, &RemoteError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("failed to decode response", "error", err)
		return "", 0, &DecodeError{Err: err}
	}

	if len(result.Choices) == 0 {
		logger.Warn("response contained no choices")
		return "", 0, ErrEmptyReply
	}

	tokens := 0
	if result.Usage != nil {
		tokens = result.Usage.TotalTokens
	}

	logger.Info("chat completion successful", "usage_total", tokens)
	return result.Choices[0].Message.Content, tokens, nil
}
