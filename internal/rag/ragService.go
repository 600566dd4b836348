package rag

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/akolanti/ProposalFeedback/internal/metrics"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm"
	"github.com/akolanti/ProposalFeedback/internal/rag/prompt"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

/*
The handlers only see Service. The private struct owns the corpus source, the prompt
composer and the completion provider, so tests swap any of them without touching HTTP code.
*/

const FailedFeedbackText = "AI 피드백을 만들지 못했어요. 잠시 후 다시 시도해 주세요."

// CorpusSource yields the read-only corpus a request should search.
type CorpusSource interface {
	Current() commonModels.Corpus
}

type staticCorpus struct {
	corpus commonModels.Corpus
}

func (s staticCorpus) Current() commonModels.Corpus { return s.corpus }

// StaticCorpus wraps an already loaded corpus, for tests and the CLI.
func StaticCorpus(corpus commonModels.Corpus) CorpusSource {
	return staticCorpus{corpus: corpus}
}

// Service is the feedback pipeline: validate, retrieve, compose, complete.
type Service interface {
	Assemble(ctx context.Context, submission feedbackModel.Submission) feedbackModel.FeedbackRecord
	Documents() []string
}

type Options struct {
	Keywords string
	TopK     int
}

type service struct {
	corpus      CorpusSource
	composer    *prompt.Composer
	llmProvider llm.Provider
	keywords    string
	topK        int
	logger      *logger_i.Logger
}

func NewService(corpus CorpusSource, composer *prompt.Composer, provider llm.Provider, opts Options) Service {
	if opts.TopK <= 0 {
		opts.TopK = config.DefaultTopK
	}
	if opts.Keywords == "" {
		opts.Keywords = config.DomainKeywords
	}
	return &service{
		corpus:      corpus,
		composer:    composer,
		llmProvider: provider,
		keywords:    opts.Keywords,
		topK:        opts.TopK,
		logger:      logger_i.NewLogger("Feedback Service"),
	}
}

// Assemble always returns a record. Missing fields and snippets are filled in even when the
// completion step fails, so the client can still render them.
func (s *service) Assemble(ctx context.Context, submission feedbackModel.Submission) feedbackModel.FeedbackRecord {
	start := time.Now()
	submission.Mode = feedbackModel.ParseMode(string(submission.Mode))
	log := s.logger.With("traceId", logger_i.TraceId(ctx), "mode", submission.Mode)

	corpus := s.corpus.Current()
	record := feedbackModel.FeedbackRecord{
		Missing:  s.executeRubricStep(submission),
		Snippets: s.executeRetrievalStep(corpus, submission.Query(s.keywords)),
	}
	log.Debug("Rubric and retrieval done", "missing", record.Missing.Fields(), "snippets", len(record.Snippets), "documents", corpus.Len())

	defer func() {
		metrics.CaptureFeedbackMetrics(string(record.Outcome), string(submission.Mode), time.Since(start))
	}()

	p, err := s.composer.Compose(submission, record.Missing, record.Snippets)
	if err != nil {
		record = s.feedbackError(log, record, err, "PROMPT_FAILURE")
		return record
	}

	completionCtx, cancel := context.WithTimeout(ctx, config.CompletionTimeout)
	defer cancel()
	text, err := s.executeLLMStep(completionCtx, p)

	switch {
	case err == nil:
		record.FeedbackText = text
		record.Outcome = feedbackModel.OutcomeGenerated
	case errors.Is(err, llm.ErrUnconfigured):
		log.Warn("Completion backend not configured", "backend", s.llmProvider.Name())
		record.FeedbackText = text
		record.Outcome = feedbackModel.OutcomeUnconfigured
	case text != "":
		log.Warn("Using partial completion", "error", err)
		record.FeedbackText = text
		record.Outcome = feedbackModel.OutcomeGenerated
	default:
		record = s.feedbackError(log, record, err, "LLM_GENERATION_FAILURE")
	}
	return record
}

func (s *service) Documents() []string {
	return s.corpus.Current().IDs()
}
