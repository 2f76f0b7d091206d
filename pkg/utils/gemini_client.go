package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClientInterface generates the raw itinerary JSON for a prompt.
type AIClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiClient implements AIClientInterface using Google's Gemini models
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		temperature: 0.7,
	}, nil
}

func (c *GeminiClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(c.temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrUnexpectedBehaviorOfAI)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return validJSONOrError(text.String())
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func validJSONOrError(raw string) (string, error) {
	content := CleanJSONResponse(raw)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: lỗi phân tích dữ liệu JSON từ AI. Dữ liệu nhận được: %s",
			ErrUnexpectedBehaviorOfAI, Truncate(content, 200))
	}
	return content, nil
}

// NewAIClient Factory function to create either OpenAI or Gemini client based on config
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
