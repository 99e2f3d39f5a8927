package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the default Gemini model used for content generation.
	DefaultModel = "gemini-2.5-flash-preview-05-20"
	// DefaultMaxTokens bounds a single completion when the caller does not specify one.
	DefaultMaxTokens = int32(2048)
	// DefaultTemperature is the sampling temperature used when the caller does not specify one.
	DefaultTemperature = float32(0.7)
)

// Client represents a client for interacting with an LLM.
type Client struct {
	apiKey    string
	modelName string
	gClient   *genai.Client
}

// CompletionOptions contains options for a single completion call.
type CompletionOptions struct {
	MaxTokens   int32   // Maximum number of tokens to generate
	Temperature float32 // Temperature for randomness (0.0 to 1.0)
	Model       string  // Model to use (optional, defaults to client's model)
	JSONMode    bool    // Request a JSON response body
}

// NewClient creates a new LLM client.
// It supports multiple ways to get the API key (in order of preference):
// 1. Environment variable: GEMINI_API_KEY (or alternatives)
// 2. Viper configuration: ai.gemini.api_key
func NewClient(modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY"); apiKey == "" {
			if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
				apiKey = viper.GetString("ai.gemini.api_key")
			}
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY environment variable or ai.gemini.api_key in config file")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	ctx := context.Background()
	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		apiKey:    apiKey,
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// ModelName returns the model the client defaults to.
func (c *Client) ModelName() string {
	return c.modelName
}

// Close releases client resources. The new SDK client is stateless, so this is a no-op
// kept for symmetry with callers that defer Close.
func (c *Client) Close() error {
	return nil
}

// Complete sends a system/user prompt pair to the model and returns the raw text response.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompletionOptions) (string, error) {
	model := opts.Model
	if model == "" {
		model = c.modelName
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	if opts.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: userPrompt}},
		Role:  "user",
	}}

	resp, err := c.gClient.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
