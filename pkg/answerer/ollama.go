package answerer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"ragcheck/pkg/core"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"
const defaultOllamaModel = "llama3"

// Ollama answers through a local Ollama server's OpenAI-compatible
// chat endpoint.
type Ollama struct {
	Client     openai.Client
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func NewOllama(baseURL, modelName string) (*Ollama, error) {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if modelName == "" {
		modelName = defaultOllamaModel
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey("ollama"),
	}
	return &Ollama{
		Client:     openai.NewClient(opts...),
		Model:      modelName,
		BaseURL:    baseURL,
		Timeout:    60 * time.Second,
		MaxRetries: 2,
		Backoff:    500 * time.Millisecond,
	}, nil
}

func (o Ollama) Name() string {
	if o.Model == "" {
		return defaultOllamaModel
	}
	return o.Model
}

func (o Ollama) Answer(ctx context.Context, question string) (core.Response, error) {
	modelName := o.Name()
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	maxRetries := o.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := o.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(answerPrompt, question)),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		resp, err := o.Client.Chat.Completions.New(attemptCtx, params)
		cancel()
		if err == nil {
			if len(resp.Choices) == 0 {
				return core.Response{}, fmt.Errorf("ollama: empty response")
			}
			answer, page := parseCitation(resp.Choices[0].Message.Content)
			usage := core.TokenUsage{
				PromptTokens:     int(resp.Usage.PromptTokens),
				CompletionTokens: int(resp.Usage.CompletionTokens),
				TotalTokens:      int(resp.Usage.TotalTokens),
			}
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

	return core.Response{}, fmt.Errorf("ollama: request failed after retries: %w", lastErr)
}
