// Package genai drafts promotional product descriptions through the Gemini
// generateContent REST API. The core stores only consume the resolved text
// or the failure; nothing here touches marketplace state.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// ErrNotConfigured indicates no API key is present. The feature is
// disabled and no network call is attempted.
var ErrNotConfigured = errors.New("genai: API key is not configured")

// ErrGenerationFailed is the generic failure surfaced for any call error.
var ErrGenerationFailed = errors.New("genai: failed to generate description")

// Config holds client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the Gemini endpoint; used in tests.
	BaseURL string
}

// Client calls the Gemini API to draft product descriptions.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Gemini client. Every request carries the configured
// timeout; there are no retries.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// request/response shapes for the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription drafts a promotional description for a product.
// Returns ErrNotConfigured without a network call when no key is set, and
// ErrGenerationFailed for any call failure.
func (c *Client) GenerateDescription(ctx context.Context, productName, category string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(
		"Generate a compelling and concise product description for a used '%s' in the '%s' category "+
			"for the Sri Lankan marketplace \"IT.exe\". The target audience is the Sri Lankan PC building "+
			"community. Highlight its potential use cases and value. Keep it professional but friendly. "+
			"The description must be under 120 words. Do not use markdown or formatting.",
		productName, category,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	return strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text), nil
}
