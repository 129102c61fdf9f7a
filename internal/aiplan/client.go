// Package aiplan requests personalized weekly plans from an OpenAI
// compatible chat completion API.
package aiplan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

var (
	ErrMissingAPIKey      = errors.New("ai api key not configured")
	ErrEmptyResponse      = errors.New("empty ai response")
	ErrUnparsableResponse = errors.New("unparsable ai response")
)

// StatusError is a non-2xx reply of the completion API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai api error: status %d", e.StatusCode)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type ClientParams struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
	Metrics     *metrics.Manager
}

type Client struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	metrics     *metrics.Manager
}

func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint:    strings.TrimRight(params.BaseURL, "/") + "/chat/completions",
		apiKey:      params.APIKey,
		model:       params.Model,
		temperature: params.Temperature,
		maxTokens:   params.MaxTokens,
		httpClient:  httpClient,
		metrics:     params.Metrics,
	}
}

// Complete sends one system and one user message and returns the content
// of the first choice.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aiplan.client.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("model", c.model))

	start := time.Now()
	outcome := "ok"
	defer func() {
		if c.metrics == nil {
			return
		}
		c.metrics.CounterAIRequests.WithLabelValues(outcome).Inc()
		c.metrics.HistAICompletionDuration.Observe(time.Since(start).Seconds())
	}()

	if c.apiKey == "" {
		outcome = "config_error"
		return "", ErrMissingAPIKey
	}

	reqBody, err := json.Marshal(ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		outcome = "request_error"
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		outcome = "request_error"
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "http_error"
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = "http_error"
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "status_error"
		log.Errorf("ai api responded with %d: %s", resp.StatusCode, body)
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		outcome = "unparsable"
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}
	if chatResp.Error != nil {
		outcome = "status_error"
		return "", fmt.Errorf("ai api error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		outcome = "empty"
		return "", ErrEmptyResponse
	}

	return chatResp.Choices[0].Message.Content, nil
}
