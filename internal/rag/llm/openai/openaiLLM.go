package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const backendName = "openai"

type llmClient struct {
	client      openai.Client
	modelName   string
	temperature float64
	logger      *logger_i.Logger
}

type Options struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	// BaseURL is only set by tests and proxies
	BaseURL string
}

func NewClient(opts Options) llm.Provider {
	requestOptions := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.HTTPClient != nil {
		requestOptions = append(requestOptions, option.WithHTTPClient(opts.HTTPClient))
	}
	if opts.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(opts.BaseURL))
	}
	model := opts.Model
	if model == "" {
		model = config.OpenAIModelName
	}

	logger := logger_i.NewLogger("llm_openai")
	logger.Info("OpenAI client created", "model", model)
	return &llmClient{
		client:      openai.NewClient(requestOptions...),
		modelName:   model,
		temperature: float64(config.ModelTemperature),
		logger:      logger,
	}
}

func (c *llmClient) Name() string {
	return backendName
}

func (c *llmClient) Complete(ctx context.Context, system string, user string) (string, error) {
	log := c.logger.With("traceId", logger_i.TraceId(ctx))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		log.Error("Chat completion request failed", "error", err)
		return "", llm.Failed(backendName, err)
	}
	if len(completion.Choices) == 0 {
		return "", llm.Failed(backendName, nil)
	}

	choice := completion.Choices[0]
	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		log.Warn("Empty completion", "finishReason", choice.FinishReason)
		return "", llm.Failed(backendName, nil)
	}
	if choice.FinishReason == "length" {
		// truncated, still worth showing
		log.Warn("Completion truncated", "model", c.modelName)
		return text, llm.Failed(backendName, nil)
	}
	return text, nil
}
