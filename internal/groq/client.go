/*
Package groq is a thin client for the Groq chat-completions API.
It sends one prompt and returns the raw completion text; prompt
construction and response parsing belong to the caller.
*/
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// --- Groq API Configuration ---
const (
	defaultAPIURL  = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "mixtral-8x7b-32768"
	temperature    = 0.7
	requestTimeout = 30 * time.Second
)

// Completer is the narrow provider contract the rest of the application
// depends on. Handlers and tests substitute their own implementation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// --- Structs for the chat-completions request/response ---
// (These are internal to the provider package.)

type chatPayload struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls the Groq API. It holds no per-request state and is safe for
// concurrent use.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient builds a Client with the production endpoint and a 30 second
// request timeout. Expiry of the timeout surfaces as a provider failure.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithURL is NewClient pointed at a different endpoint. Used by
// tests to target an httptest server.
func NewClientWithURL(apiKey, apiURL string) *Client {
	c := NewClient(apiKey)
	c.apiURL = apiURL
	return c
}

// Complete sends the prompt as a single user message and returns the first
// choice's content. Every failure is terminal for the request: there is no
// retry here, callers surface a generic provider error to the user.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatPayload{
		Model:       c.model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "POST", c.apiURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Info().Str("model", c.model).Msg("Calling Groq API...")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API returned non-200 status: %s, Body: %s", resp.Status, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content found in Groq response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
