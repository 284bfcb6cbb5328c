// ABOUTME: Gemini implementation of the grounded Generator using the google.golang.org/genai SDK
// ABOUTME: Enables Google Search grounding on every call and maps SDK failures to RemoteCallError

package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	coreerrors "telescout-api/core/errors"
	"telescout-api/core/interfaces"
)

// DefaultModel is the model used when none is configured
const DefaultModel = "gemini-2.5-flash"

// apiName identifies this capability in RemoteCallError
const apiName = "gemini"

// Config holds the Gemini client settings
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// HTTPClient is the transport used by the SDK; nil uses the SDK default
	HTTPClient *http.Client
}

// contentGenerator is the part of *genai.Models the client uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements interfaces.Generator
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewClient creates a Gemini client for the Gemini API backend
func NewClient(ctx context.Context, cfg Config, logger interfaces.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini API key is required")
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newClient(sdk.Models, cfg, logger), nil
}

func newClient(models contentGenerator, cfg Config, logger interfaces.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Client{
		models:  models,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Model returns the configured model id
func (c *Client) Model() string {
	return c.model
}

func groundedConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}

// GenerateGrounded sends prompt with Google Search grounding enabled
func (c *Client) GenerateGrounded(ctx context.Context, prompt string) (*interfaces.GroundedResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), groundedConfig())
	if err != nil {
		return nil, toRemoteError(err)
	}

	out := &interfaces.GroundedResponse{
		Text:   resp.Text(),
		Chunks: groundingChunks(resp),
	}

	c.logger.Debug("Gemini call completed", map[string]interface{}{
		"model":       c.model,
		"chunks":      len(out.Chunks),
		"text_length": len(out.Text),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return out, nil
}

// groundingChunks collects the grounding chunks of the first candidate
func groundingChunks(resp *genai.GenerateContentResponse) []interfaces.GroundingChunk {
	chunks := []interfaces.GroundingChunk{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return chunks
	}

	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return chunks
	}

	for _, gc := range meta.GroundingChunks {
		if gc == nil {
			continue
		}
		chunk := interfaces.GroundingChunk{}
		if gc.Web != nil {
			chunk.Web = &interfaces.WebReference{URI: gc.Web.URI, Title: gc.Web.Title}
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

// toRemoteError wraps an SDK failure, keeping the HTTP status when known
func toRemoteError(err error) error {
	remote := &coreerrors.RemoteCallError{API: apiName, Err: err}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		remote.StatusCode = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		remote.StatusCode = apiErrPtr.Code
	case errors.Is(err, context.DeadlineExceeded):
		remote.StatusCode = http.StatusGatewayTimeout
	}
	return remote
}
