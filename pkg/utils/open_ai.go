package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no content generated by OpenAI", ErrUnexpectedBehaviorOfAI)
	}
	return validJSONOrError(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) Close() error {
	return nil
}
