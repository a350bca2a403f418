package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"copy_prompt_server/internal/utils"

	"github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// Generate sends prompt as a single user message to modelID and returns the
// model's text. An empty modelID uses the default model. Transient failures
// are retried once.
func (g *Generator) Generate(ctx context.Context, modelID, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	model := strings.TrimSpace(modelID)
	if model == "" {
		model = g.defaultModel
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	complete := g.completeOpenAI
	if isAnthropicModel(model) {
		complete = g.completeAnthropic
	}

	content, err := complete(ctx, model, prompt)
	if err != nil && utils.ShouldRetry(err) && ctx.Err() == nil {
		log.Printf("Generation with %s failed, retrying once after delay... Error: %v", model, err)
		select {
		case <-time.After(g.retryDelay):
		case <-ctx.Done():
			return "", fmt.Errorf("generation with %s cancelled: %w", model, ctx.Err())
		}
		content, err = complete(ctx, model, prompt)
	}
	if err != nil {
		return "", fmt.Errorf("generation with %s failed: %w", model, err)
	}
	return content, nil
}

func (g *Generator) completeOpenAI(ctx context.Context, model, prompt string) (string, error) {
	if g.openaiClient == nil {
		return "", ErrMissingAPIKey
	}
	resp, err := g.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Printf("WARN: OpenAI usage for empty response: %+v", resp.Usage)
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *Generator) completeAnthropic(ctx context.Context, model, prompt string) (string, error) {
	if g.anthropicClient == nil {
		return "", ErrMissingAPIKey
	}
	temperature := g.temperature
	resp, err := g.anthropicClient.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(model),
		Messages:    []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
		MaxTokens:   g.maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages call failed: %w", err)
	}
	text := resp.GetFirstContentText()
	if strings.TrimSpace(text) == "" {
		log.Printf("WARN: Anthropic usage for empty response: %+v", resp.Usage)
		return "", ErrEmptyResponse
	}
	return text, nil
}
