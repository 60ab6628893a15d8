// Package gemini provides the HTTP client for the remote table formatter.
package gemini

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

	"github.com/cenkalti/backoff/v4"
)

// Defaults for the generateContent endpoint.
const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel       = "gemini-1.5-flash"
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3

	// Starting delay for the capped exponential retry on busy servers.
	DefaultRetryInterval = 500 * time.Millisecond
)

// ErrNoAPIKey is returned before any network call when no credential is
// configured.
var ErrNoAPIKey = errors.New("no API key configured (set remote.api_key or GEMINI_API_KEY)")

// ServerError reports a non-success HTTP response from the API.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("gemini API returned status %d: %s", e.StatusCode, e.Body)
}

// Transient reports whether the status indicates a temporarily busy server
// that is worth retrying.
func (e *ServerError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusServiceUnavailable
}

// ContentError reports a response that carried no usable text, including
// content-filter blocks.
type ContentError struct {
	Reason string
}

func (e *ContentError) Error() string {
	return "gemini API returned no usable text: " + e.Reason
}

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	MaxAttempts   int
	RetryInterval time.Duration
}

// Client calls the generateContent endpoint to turn activity logs into
// Markdown tables.
type Client struct {
	apiKey        string
	model         string
	baseURL       string
	timeout       time.Duration
	maxAttempts   int
	retryInterval time.Duration
	httpClient    *http.Client
}

// NewClient creates a client with defaults applied.
func NewClient(opts Options) *Client {
	c := &Client{
		apiKey:        opts.APIKey,
		model:         opts.Model,
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		timeout:       opts.Timeout,
		maxAttempts:   opts.MaxAttempts,
		retryInterval: opts.RetryInterval,
		httpClient:    &http.Client{},
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.retryInterval <= 0 {
		c.retryInterval = DefaultRetryInterval
	}
	return c
}

// summaryPrompt instructs the model to produce the same table shape the
// local parser emits.
const summaryPrompt = `Convert the following daily activity log into a Markdown table with exactly three columns: Time, Activity, Notes.
Normalize times to a 12-hour clock with AM/PM. Use an en dash between the start and end of a time range.
Use "—" for a missing time or activity and "-" for empty notes.
Reply with the table only, no commentary.`

// Summarize produces a Markdown table for the log text. Busy-server
// responses (429, 503) are retried with exponential backoff up to the
// attempt cap; all other failures surface immediately. It returns either
// the table text or an error, never both.
func (c *Client) Summarize(ctx context.Context, logText string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	var result string
	operation := func() error {
		text, err := c.generate(ctx, logText)
		if err != nil {
			var srvErr *ServerError
			if errors.As(err, &srvErr) && srvErr.Transient() {
				return err
			}
			return backoff.Permanent(err)
		}
		result = text
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	retries := uint64(c.maxAttempts - 1) // #nosec G115 -- maxAttempts is validated >= 1
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx)); err != nil {
		return "", err
	}

	return result, nil
}

// Request and response shapes for generateContent.
type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// generate performs a single API call.
func (c *Client) generate(ctx context.Context, logText string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{Parts: []contentPart{{Text: summaryPrompt + "\n\n" + logText}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1024*1024)) // Limit to 1MB
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", &ServerError{
			StatusCode: httpResp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		return "", &ContentError{Reason: "prompt blocked: " + parsed.PromptFeedback.BlockReason}
	}

	if len(parsed.Candidates) == 0 {
		return "", &ContentError{Reason: "response contained no candidates"}
	}

	candidate := parsed.Candidates[0]
	if candidate.FinishReason == "SAFETY" {
		return "", &ContentError{Reason: "candidate blocked by content filter"}
	}

	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		sb.WriteString(p.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ContentError{Reason: "response contained no text"}
	}

	return text, nil
}
