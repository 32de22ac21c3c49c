// Package groq implements opinion.Provider against the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"ats-backend/internal/opinion"
	"ats-backend/internal/shared/metrics"
)

const (
	apiURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "gemma2-9b-it"
)

// Client calls the Groq chat completions endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Groq-backed opinion provider. The model defaults
// when empty; the API key is required.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GROQ_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// ExtractSections asks the model to restate the resume under the literal
// Education/Experience/Projects headers plus the numbered Experience Dates
// listing the section parser consumes.
func (c *Client) ExtractSections(ctx context.Context, resumeText string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: sectionSystemPrompt},
		{Role: "user", Content: sectionUserPrompt(resumeText, time.Now())},
	}
	return c.complete(ctx, messages, 0.1)
}

// Evaluate asks the model for the full ATS evaluation report, including the
// "Overall ATS Score: NN/100" line.
func (c *Client) Evaluate(ctx context.Context, resumeText, jobRequirements string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: evaluateSystemPrompt},
		{Role: "user", Content: evaluateUserPrompt(resumeText, jobRequirements)},
	}
	return c.complete(ctx, messages, 0.2)
}

func (c *Client) complete(ctx context.Context, messages []chatMessage, temperature float32) (string, error) {
	metrics.IncOpinionRequest()
	content, err := c.doComplete(ctx, messages, temperature)
	if err != nil {
		metrics.IncOpinionFailure()
	}
	return content, err
}

func (c *Client) doComplete(ctx context.Context, messages []chatMessage, temperature float32) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temperature,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("groq request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("groq response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("groq error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("groq response empty content")
	}
	return content, nil
}

var _ opinion.Provider = (*Client)(nil)
