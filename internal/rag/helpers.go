package rag

import (
	"context"
	"time"

	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/akolanti/ProposalFeedback/internal/metrics"
	"github.com/akolanti/ProposalFeedback/internal/rag/prompt"
	"github.com/akolanti/ProposalFeedback/internal/rag/retrieval"
	"github.com/akolanti/ProposalFeedback/internal/rag/rubric"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

func (s *service) feedbackError(log *logger_i.Logger, record feedbackModel.FeedbackRecord, err error, message string) feedbackModel.FeedbackRecord {
	log.Error(message, "error", err)
	record.FeedbackText = FailedFeedbackText
	record.Outcome = feedbackModel.OutcomeFailed
	return record
}

func (s *service) executeRubricStep(submission feedbackModel.Submission) feedbackModel.RubricResult {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("rubric", time.Since(start)) }()

	return rubric.Validate(submission)
}

func (s *service) executeRetrievalStep(corpus commonModels.Corpus, query string) []commonModels.Snippet {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("retrieval", time.Since(start)) }()

	snippets := retrieval.Retrieve(corpus, query, s.topK)
	if len(snippets) == 0 {
		metrics.IncrementEmptyRetrievals()
	}
	return snippets
}

func (s *service) executeLLMStep(ctx context.Context, p prompt.Prompt) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Complete(ctx, p.System, p.User)
}
