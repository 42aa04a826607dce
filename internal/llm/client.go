package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	log "github.com/sirupsen/logrus"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
)

// Config selects the model and decoding parameters of one Generator
// instance. The extractor and the reviewer get their own Config.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Client implements port.Generator against an OpenAI-compatible endpoint.
// The composition root constructs one per role and injects it; connection
// state is reused across calls.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

func NewClient(cfg Config) *Client {
	api := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return &Client{
		api:         api,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *Client) Complete(ctx context.Context, prompt domain.Prompt) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	}
	if prompt.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   prompt.Schema.Name,
					Schema: prompt.Schema.Definition,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	log.WithFields(log.Fields{
		"model":  c.model,
		"tokens": completion.Usage.TotalTokens,
	}).Debug("Completion received")

	return completion.Choices[0].Message.Content, nil
}
