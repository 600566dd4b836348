package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"google.golang.org/genai"
)

const backendName = "gemini"

type llmClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      *logger_i.Logger
}

type Options struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	// BaseURL is only set by tests and proxies
	BaseURL string
}

func NewClient(ctx context.Context, opts Options) (llm.Provider, error) {
	logger := logger_i.NewLogger("llm_gemini")

	clientConfig := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	c, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = config.GeminiModelName
	}
	logger.Info("Gemini client created", "model", model)
	return &llmClient{client: c, modelName: model, temperature: config.ModelTemperature, logger: logger}, nil
}

func (c *llmClient) Name() string {
	return backendName
}

func (c *llmClient) Complete(ctx context.Context, system string, user string) (string, error) {
	log := c.logger.With("traceId", logger_i.TraceId(ctx))

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(c.temperature),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(user), contentConfig)
	if err != nil {
		log.Error("GenerateContent failed", "error", err)
		return "", llm.Failed(backendName, err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", llm.Failed(backendName, nil)
	}

	text := strings.TrimSpace(result.Text())
	finishReason := result.Candidates[0].FinishReason
	if text == "" {
		log.Warn("Empty completion", "finishReason", finishReason)
		return "", llm.Failed(backendName, nil)
	}
	if finishReason == genai.FinishReasonMaxTokens {
		log.Warn("Completion truncated", "model", c.modelName)
		return text, llm.Failed(backendName, nil)
	}
	return text, nil
}
