// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate calls the text-generation service that drafts travel
// plans and wraps it with a retry policy that distinguishes rate limits and
// connection failures from rejected requests.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"text/template"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// Backend abstracts the generation API so tests can supply a mock. It
// returns the raw response text, or an error classified as
// *RateLimitedError, *ConnectionError, or *InvalidRequestError.
type Backend interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is one generation call.
type Request struct {
	// Query is the traveller's message.
	Query string

	// Preferences are included verbatim as context.
	Preferences types.Preferences

	// Agent frames the request. A zero Agent uses no system prompt and the
	// backend's default temperature.
	Agent Agent
}

// planPromptTmpl asks for exactly two alternatives in the grammar the
// itinerary parser accepts.
var planPromptTmpl = template.Must(template.New("plan").Parse(`User preferences:
{{.Preferences}}

User message:
{{.Query}}

Provide two distinct travel plan alternatives. Write the first alternative, then a line containing only "---", then the second alternative, which starts with "Option 2".

Within each alternative:
- Start every day with a header line of the form "## Day <number>: <title>".
- List each activity on its own line as "- HH:MM <description>", using 24-hour time.
- Put the place name in bold, for example **Old Town**.
- End the line with the expected duration in parentheses, for example (2 hours) or (45 minutes).
`))

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

const defaultMaxTokens = 2048

// ClaudeBackend calls the Claude Messages API.
type ClaudeBackend struct {
	APIKey    string
	Model     string
	MaxTokens int
	UserAgent string
	Client    *http.Client
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	System      string          `json:"system,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends one plan request and returns the concatenated text blocks
// of the reply.
func (c *ClaudeBackend) Complete(ctx context.Context, req Request) (string, error) {
	prompt, err := RenderPrompt(req)
	if err != nil {
		return "", &InvalidRequestError{Err: fmt.Errorf("rendering prompt: %w", err)}
	}

	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	body := claudeRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    req.Agent.SystemPrompt,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	}
	if req.Agent.Temperature > 0 {
		t := req.Agent.Temperature
		body.Temperature = &t
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", &InvalidRequestError{Err: fmt.Errorf("marshaling request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", &InvalidRequestError{Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", &ConnectionError{Err: fmt.Errorf("calling Claude API: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(resp.StatusCode, string(data))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", &ConnectionError{Err: fmt.Errorf("decoding Claude response: %w", err)}
	}

	var out bytes.Buffer
	for _, block := range cResp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", &ConnectionError{Err: errors.New("no text content in Claude API response")}
	}
	return out.String(), nil
}

// classifyStatus maps a non-200 status to the backend error classes:
// 429 and 529 (overloaded) are rate limits, other 5xx are connection
// failures, and remaining 4xx are invalid requests.
func classifyStatus(code int, body string) error {
	err := fmt.Errorf("Claude API returned %d: %s", code, body)
	switch {
	case code == http.StatusTooManyRequests || code == 529:
		return &RateLimitedError{Err: err}
	case code >= 500:
		return &ConnectionError{Err: err}
	default:
		return &InvalidRequestError{StatusCode: code, Err: err}
	}
}

// RenderPrompt executes the plan prompt template for req.
func RenderPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Preferences string
		Query       string
	}{
		Preferences: req.Preferences.PromptContext(),
		Query:       req.Query,
	}
	if err := planPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
