// Package backend is the HTTP client for a remote AmoraVerse generation
// service. When no backend is configured the local template engine is
// used instead; when one is configured its failures are surfaced, never
// silently papered over with local output.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// GenerationError reports a failed call to the generation backend. The
// caller may retry the exact same request.
type GenerationError struct {
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation backend error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("generation backend error: %s", e.Message)
}

// Client talks to the remote poetry API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a backend client. BaseURL must be non-empty.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// PoemRequest is the generation request payload.
type PoemRequest struct {
	Prompt    string `json:"prompt"`
	Style     string `json:"style,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Language  string `json:"language,omitempty"`
	UseHybrid bool   `json:"use_hybrid,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// PoemResponse is the generation result.
type PoemResponse struct {
	Poem            string  `json:"poem"`
	ModelUsed       string  `json:"model_used"`
	ConfidenceScore float64 `json:"confidence_score"`
	GenerationTime  float64 `json:"generation_time"`
	Style           string  `json:"style"`
	Tone            string  `json:"tone"`
}

// Variations is the refine-poem result.
type Variations struct {
	Variations     []PoemResponse `json:"variations"`
	OriginalPrompt string         `json:"original_prompt"`
}

// ModelStatus describes the remote model state.
type ModelStatus struct {
	LocalModelLoaded  bool   `json:"local_model_loaded"`
	FallbackAvailable bool   `json:"fallback_available"`
	DatasetSize       int    `json:"dataset_size"`
	LastTraining      string `json:"last_training,omitempty"`
}

// MoodAnalysis is the photo mood-analysis result.
type MoodAnalysis struct {
	DetectedMood     string   `json:"detected_mood"`
	SuggestedPrompts []string `json:"suggested_prompts"`
	Confidence       float64  `json:"confidence"`
}

// UserPoem is a user-written poem submitted for the training dataset.
type UserPoem struct {
	UserPoem   string `json:"user_poem"`
	UserPrompt string `json:"user_prompt"`
	Style      string `json:"style"`
	Tone       string `json:"tone"`
}

// GeneratePoem requests a poem for the given prompt.
func (c *Client) GeneratePoem(ctx context.Context, req PoemRequest) (*PoemResponse, error) {
	var resp PoemResponse
	if err := c.post(ctx, "/generate-poem", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefinePoem requests variations on a prompt.
func (c *Client) RefinePoem(ctx context.Context, req PoemRequest) (*Variations, error) {
	var resp Variations
	if err := c.post(ctx, "/refine-poem", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddUserPoem submits a user-written poem to the backend's dataset.
func (c *Client) AddUserPoem(ctx context.Context, poem UserPoem) error {
	if poem.Style == "" {
		poem.Style = "User Generated"
	}
	if poem.Tone == "" {
		poem.Tone = "Personal"
	}
	return c.post(ctx, "/add-user-poem", poem, nil)
}

// AnalyzeMood asks the backend to suggest prompts for an uploaded image.
func (c *Client) AnalyzeMood(ctx context.Context, imageData string) (*MoodAnalysis, error) {
	var resp MoodAnalysis
	body := map[string]string{"image_data": imageData}
	if err := c.post(ctx, "/analyze-mood", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status fetches the remote model status.
func (c *Client) Status(ctx context.Context) (*ModelStatus, error) {
	var resp ModelStatus
	if err := c.get(ctx, "/model-status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Styles lists the styles the backend supports.
func (c *Client) Styles(ctx context.Context) ([]string, error) {
	var resp struct {
		Styles []string `json:"styles"`
	}
	if err := c.get(ctx, "/styles", &resp); err != nil {
		return nil, err
	}
	return resp.Styles, nil
}

// Tones lists the tones the backend supports.
func (c *Client) Tones(ctx context.Context) ([]string, error) {
	var resp struct {
		Tones []string `json:"tones"`
	}
	if err := c.get(ctx, "/tones", &resp); err != nil {
		return nil, err
	}
	return resp.Tones, nil
}

// Languages lists the languages the backend supports.
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	var resp struct {
		Languages []string `json:"languages"`
	}
	if err := c.get(ctx, "/languages", &resp); err != nil {
		return nil, err
	}
	return resp.Languages, nil
}

// Health reports whether the backend is reachable and healthy.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &GenerationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GenerationError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &GenerationError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &GenerationError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
