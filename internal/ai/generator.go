package ai

import (
	"errors"
	"strings"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrEmptyResponse = errors.New("model returned an empty response")
	ErrMissingAPIKey = errors.New("no API key configured for this model's provider")
)

// Options configures a Generator. Zero values fall back to the defaults below.
type Options struct {
	OpenAIKey     string
	OpenAIBaseURL string // e.g. an OpenAI-compatible gateway; empty means api.openai.com
	AnthropicKey  string
	DefaultModel  string
	MaxTokens     int
	Temperature   float32
	Timeout       time.Duration
	RetryDelay    time.Duration
}

const (
	defaultModel      = openai.GPT4o
	defaultMaxTokens  = 2048
	defaultRetryDelay = 2 * time.Second
)

// Generator sends assembled prompts to a text model. Models whose id starts
// with "claude" go to Anthropic, everything else to OpenAI.
type Generator struct {
	openaiClient    *openai.Client
	anthropicClient *anthropic.Client

	defaultModel string
	maxTokens    int
	temperature  float32
	timeout      time.Duration
	retryDelay   time.Duration
}

func NewGenerator(opts Options) *Generator {
	g := &Generator{
		defaultModel: opts.DefaultModel,
		maxTokens:    opts.MaxTokens,
		temperature:  opts.Temperature,
		timeout:      opts.Timeout,
		retryDelay:   opts.RetryDelay,
	}
	if g.defaultModel == "" {
		g.defaultModel = defaultModel
	}
	if g.maxTokens <= 0 {
		g.maxTokens = defaultMaxTokens
	}
	if g.temperature == 0 {
		g.temperature = 0.7
	}
	if g.retryDelay <= 0 {
		g.retryDelay = defaultRetryDelay
	}

	if opts.OpenAIKey != "" {
		config := openai.DefaultConfig(opts.OpenAIKey)
		if opts.OpenAIBaseURL != "" {
			config.BaseURL = strings.TrimRight(opts.OpenAIBaseURL, "/")
		}
		g.openaiClient = openai.NewClientWithConfig(config)
	}
	if opts.AnthropicKey != "" {
		g.anthropicClient = anthropic.NewClient(opts.AnthropicKey)
	}
	return g
}

// DefaultModel is used when a request names no model.
func (g *Generator) DefaultModel() string {
	return g.defaultModel
}

func isAnthropicModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "claude")
}
