package handlers

import (
	"net/http"
	"sync"

	"github.com/akolanti/ProposalFeedback/internal/adapter"
	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/rag"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

var (
	feedbackInstance *FeedbackHandler //private singleton
	feedbackOnce     sync.Once
)

type FeedbackHandler struct {
	service rag.Service
	logger  *logger_i.Logger
}

func NewFeedbackHandler(service rag.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service, logger: logger_i.NewLogger("FeedbackHandler")}
}

func InitFeedbackHandler(service rag.Service) {
	feedbackOnce.Do(func() {
		feedbackInstance = NewFeedbackHandler(service)
		feedbackInstance.logger.Info("Starting feedback handler")
	})
}

// PostFeedbackHandler godoc
// @Summary      Request AI feedback on a proposal
// @Description  Checks the rubric, retrieves reference snippets and asks the completion backend for feedback.
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        request  body      api.FeedbackRequest   true  "Proposal fields and optional mode"
// @Success      200      {object}  api.FeedbackResponse  "Feedback or configuration placeholder"
// @Failure      400      {object}  api.ErrorResponse     "Malformed body"
// @Failure      429      {object}  api.ErrorResponse     "Rate limit exceeded"
// @Failure      502      {object}  api.FeedbackResponse  "Completion failed, rubric and snippets still returned"
// @Router       /api/ai/feedback [post]
func PostFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	if feedbackInstance == nil {
		WriteErrorResponse(w, http.StatusInternalServerError, api.ErrorFeedbackFailed)
		return
	}
	feedbackInstance.PostFeedback(w, r)
}

// GetDocumentsHandler godoc
// @Summary      List loaded reference documents
// @Tags         Feedback
// @Produce      json
// @Success      200  {array}  string  "Document file names"
// @Router       /api/pdfs [get]
func GetDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if feedbackInstance == nil {
		writeJsonResponse(w, http.StatusOK, []string{})
		return
	}
	feedbackInstance.GetDocuments(w, r)
}

func (h *FeedbackHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	log := h.logger.With("traceId", logger_i.TraceId(r.Context()))

	var requestData api.FeedbackRequest
	if err := decodeBody(w, r, config.MaxRequestBodyBytes, &requestData); err != nil {
		log.Warn("Bad feedback request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, api.ErrorInvalidBody)
		return
	}

	record := h.service.Assemble(r.Context(), adapter.ToSubmission(requestData))
	log.Info("Feedback assembled", "outcome", record.Outcome, "missing", len(record.Missing.Missing), "snippets", len(record.Snippets))

	status := http.StatusOK
	if record.Failed() {
		status = http.StatusBadGateway
	}
	writeJsonResponse(w, status, adapter.ToFeedbackResponse(record))
}

func (h *FeedbackHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, h.service.Documents())
}
