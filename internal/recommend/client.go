// Package recommend calls an OpenAI-compatible completion endpoint to rank
// catalog products against a customer's interest profile. The gateway is an
// external collaborator: every failure degrades to a deterministic fallback
// and is never surfaced to the user as an error.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MaxRecommendations caps a ranked result.
const MaxRecommendations = 3

// maxSuggestions caps smart search suggestions.
const maxSuggestions = 5

// maxResponseSize bounds the response body read.
const maxResponseSize = 1 << 20

// Candidate is the slice of a product the model sees.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Result is the one-shot outcome of a recommendation request: either ranked
// product ids or the error that ended it. Callers match on Err and fall back.
type Result struct {
	IDs []string
	Err error
}

// Client talks to a chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a gateway client. baseURL is the API root; the
// chat/completions path is appended if missing.
func NewClient(baseURL, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recommend asks for up to MaxRecommendations product ids ranked for the
// profile. The call runs in its own goroutine and delivers exactly one Result
// on the returned channel; it never blocks the caller and is not restartable.
// Timeout and cancellation belong to the caller's context.
func (c *Client) Recommend(ctx context.Context, profile string, candidates []Candidate) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		ids, err := c.recommend(ctx, profile, candidates)
		out <- Result{IDs: ids, Err: err}
	}()
	return out
}

func (c *Client) recommend(ctx context.Context, profile string, candidates []Candidate) ([]string, error) {
	catalog, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidates: %w", err)
	}

	prompt := fmt.Sprintf(
		"Given this customer's browsing profile: %q and these products: %s, "+
			"which %d products would you recommend? Answer only with a JSON array of product id strings.",
		profile, catalog, MaxRecommendations,
	)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw := extractJSONArray(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in model response")
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	// Keep only real candidates, in model order, capped.
	known := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		known[cand.ID] = true
	}
	out := ids[:0]
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out, nil
}

// Suggest returns up to five popular search phrases related to the query, or
// nil when the query is too short or the gateway fails. Failures are logged,
// never returned: suggestions are decoration.
func (c *Client) Suggest(ctx context.Context, query string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return nil
	}

	prompt := fmt.Sprintf(
		"Suggest %d popular search phrases for an Iraqi electronics and apparel store, "+
			"starting with or related to %q. Answer only with a JSON array of strings.",
		maxSuggestions, query,
	)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Debug("Search suggestion call failed", zap.Error(err))
		return nil
	}
	raw := extractJSONArray(content)
	if raw == "" {
		return nil
	}
	var suggestions []string
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete performs one chat-completions round trip and returns the text of
// the first choice.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) endpoint() string {
	base := strings.TrimSuffix(c.baseURL, "/")
	if strings.HasSuffix(base, "/chat/completions") {
		return base
	}
	return base + "/chat/completions"
}
