package answerer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"ragcheck/pkg/core"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

type Anthropic struct {
	Client     anthropic.Client
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	MaxTokens  int
}

func NewAnthropicFromEnv(modelName string) (*Anthropic, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, errors.New("anthropic: ANTHROPIC_API_KEY is required")
	}
	if modelName == "" {
		modelName = defaultAnthropicModel
	}
	return &Anthropic{
		Client:     anthropic.NewClient(option.WithAPIKey(apiKey)),
		Model:      modelName,
		Timeout:    30 * time.Second,
		MaxRetries: 2,
		Backoff:    500 * time.Millisecond,
		MaxTokens:  1024,
	}, nil
}

func (a Anthropic) Name() string {
	if a.Model == "" {
		return defaultAnthropicModel
	}
	return a.Model
}

func (a Anthropic) Answer(ctx context.Context, question string) (core.Response, error) {
	modelName := a.Name()
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxRetries := a.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := a.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	maxTokens := a.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(modelName),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(answerPrompt, question))),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		message, err := a.Client.Messages.New(attemptCtx, params)
		cancel()
		if err == nil {
			answer, page := parseCitation(extractText(message.Content))
			usage := core.TokenUsage{}
			usage.PromptTokens = int(message.Usage.InputTokens)
			usage.CompletionTokens = int(message.Usage.OutputTokens)
			usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
			return core.Response{
				Answer:     answer,
				Page:       page,
				TokenUsage: usage,
				Latency:    time.Since(start),
			}, nil
		}

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		lastErr = err
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return core.Response{}, ctx.Err()
			case <-time.After(backoff * time.Duration(attempt+1)):
			}
		}
	}

	return core.Response{}, fmt.Errorf("anthropic: request failed after retries: %w", lastErr)
}

func extractText(blocks []anthropic.ContentBlockUnion) string {
	if len(blocks) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, block := range blocks {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}
	return builder.String()
}
