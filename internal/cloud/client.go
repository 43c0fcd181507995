// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package cloud talks to the OpenRouter chat-completions API. One
// request per user turn: the full conversation history goes up, one
// assistant message comes back. No streaming, no retries.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

const (
	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout bounds one completion request end to end.
	DefaultTimeout = 60 * time.Second

	// Fixed sampling parameters sent with every request.
	maxTokens   = 2000
	temperature = 0.7

	// Attribution headers OpenRouter asks clients to send.
	refererHeader = "https://github.com/MeruvaPeddababu/chatbotApplication"
	titleHeader   = "ChatBot App"

	// noResponseFallback is returned when the endpoint answers 2xx but
	// the body carries no usable choice.
	noResponseFallback = "No response generated"
)

// ErrNoAPIKey means the client was asked to complete without a
// configured credential.
var ErrNoAPIKey = errors.New("no API key configured (set OPENROUTER_API_KEY or api_key in config)")

// ChatMessage is one turn in the wire format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the POST /chat/completions body.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

// ChatResponse is the subset of the response body we read.
type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Content extracts the first choice, falling back to a fixed string
// when the endpoint returned an empty choice list or empty content.
func (r *ChatResponse) Content() string {
	if len(r.Choices) == 0 || r.Choices[0].Message.Content == "" {
		return noResponseFallback
	}
	return r.Choices[0].Message.Content
}

// apiErrorResponse is the error body shape OpenRouter returns on
// non-2xx statuses.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CompletionError is a failed completion call: a transport failure
// wrapped upstream, or a non-2xx response captured here.
type CompletionError struct {
	Status  int
	Message string
}

func (e *CompletionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Client calls the completion endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient substitutes the transport entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client for the given bearer credential.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the conversation history to modelID and returns the
// assistant reply text. On failure no assistant text is produced and
// the error explains why: a *CompletionError for remote rejections,
// a wrapped transport error otherwise.
func (c *Client) Complete(ctx context.Context, modelID string, history []model.Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := ChatRequest{
		Model:       modelID,
		Messages:    toWire(history),
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Stream:      false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	// SECURITY: log status and duration only, never bodies or keys.
	log.Printf("cloud: %s %s -> %d (%s)", req.Method, req.URL.Path,
		resp.StatusCode, time.Since(start).Round(time.Millisecond))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.handleErrorResponse(resp.StatusCode, body)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return chatResp.Content(), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)
}

// handleErrorResponse prefers the endpoint's own error message when
// the body parses, else a plain status-code message.
func (c *Client) handleErrorResponse(status int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &CompletionError{Status: status, Message: apiErr.Error.Message}
	}
	return &CompletionError{Status: status}
}

func toWire(history []model.Message) []ChatMessage {
	wire := make([]ChatMessage, len(history))
	for i, m := range history {
		wire[i] = ChatMessage{Role: string(m.Role), Content: m.Content}
	}
	return wire
}
