package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrNotConfigured  = errors.New("chat gateway not configured")
	ErrRateLimited    = errors.New("chat gateway rate limited")
	ErrQuotaExceeded  = errors.New("chat gateway quota exceeded")
	ErrUpstreamFailed = errors.New("chat gateway request failed")
)

const (
	DefaultBaseURL       = "https://gen.pollinations.ai"
	DefaultPrimaryModel  = "openai-fast"
	DefaultFallbackModel = "claude-fast"
)

// Relay forwards conversations to an OpenAI-compatible completions endpoint
// and hands back the streamed body untouched. A non-success primary response
// triggers exactly one attempt against the fallback model; there is no retry
// loop, backoff, or timeout beyond the HTTP client's own.
type Relay struct {
	baseURL       string
	apiKey        string
	primaryModel  string
	fallbackModel string
	httpClient    *http.Client
}

func NewRelay(baseURL string, apiKey string, primaryModel string, fallbackModel string) *Relay {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if primaryModel == "" {
		primaryModel = DefaultPrimaryModel
	}
	if fallbackModel == "" {
		fallbackModel = DefaultFallbackModel
	}
	return &Relay{
		baseURL:       baseURL,
		apiKey:        apiKey,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		httpClient:    &http.Client{Timeout: 120 * time.Second},
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Stream sends the conversation (prefixed with the system message) to the
// primary model, falling back once on a non-success status. On success the
// caller owns the returned body and must close it.
func (relay *Relay) Stream(ctx context.Context, systemContent string, messages []Message) (io.ReadCloser, error) {
	if relay.apiKey == "" {
		return nil, ErrNotConfigured
	}

	outbound := make([]Message, 0, len(messages)+1)
	outbound = append(outbound, Message{Role: "system", Content: systemContent})
	outbound = append(outbound, messages...)

	response, err := relay.attempt(ctx, relay.primaryModel, outbound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		drainAndClose(response.Body)
		response, err = relay.attempt(ctx, relay.fallbackModel, outbound)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamFailed, err)
		}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		status := response.StatusCode
		drainAndClose(response.Body)
		switch status {
		case http.StatusTooManyRequests:
			return nil, ErrRateLimited
		case http.StatusPaymentRequired:
			return nil, ErrQuotaExceeded
		}
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFailed, status)
	}

	return response.Body, nil
}

func (relay *Relay) attempt(ctx context.Context, model string, messages []Message) (*http.Response, error) {
	payload, err := json.Marshal(completionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, relay.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+relay.apiKey)
	request.Header.Set("Content-Type", "application/json")

	return relay.httpClient.Do(request)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
