package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/akolanti/ProposalFeedback/internal/adapter"
	"github.com/akolanti/ProposalFeedback/internal/adapter/utils"
	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/proposalModel"
	"github.com/akolanti/ProposalFeedback/internal/metrics"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

const (
	errorTitleRequired   = "제목을 입력해주세요."
	errorTitleTooLong    = "제목이 너무 길어요."
	errorProposalUnknown = "proposal not found."
	errorBoardEmpty      = "no proposals yet."
	errorStore           = "proposal store unavailable."
)

var (
	proposalInstance *ProposalHandler
	proposalOnce     sync.Once
)

type ProposalHandler struct {
	store  proposalModel.ProposalStore
	logger *logger_i.Logger
}

func NewProposalHandler(store proposalModel.ProposalStore) *ProposalHandler {
	return &ProposalHandler{store: store, logger: logger_i.NewLogger("ProposalHandler")}
}

func InitProposalHandler(store proposalModel.ProposalStore) {
	proposalOnce.Do(func() {
		proposalInstance = NewProposalHandler(store)
		proposalInstance.logger.Info("Starting proposal handler")
	})
}

func withProposals(w http.ResponseWriter, r *http.Request, next func(*ProposalHandler, http.ResponseWriter, *http.Request)) {
	if proposalInstance == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, errorStore)
		return
	}
	if !validateContext(r.Context()) {
		return
	}
	next(proposalInstance, w, r)
}

// CreateProposalHandler godoc
// @Summary      Add a proposal to the vote board
// @Tags         Proposals
// @Accept       json
// @Produce      json
// @Param        request  body      api.ProposalRequest   true  "Proposal title"
// @Success      201      {object}  api.ProposalResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing or too long title"
// @Router       /api/proposals [post]
func CreateProposalHandler(w http.ResponseWriter, r *http.Request) {
	withProposals(w, r, (*ProposalHandler).CreateProposal)
}

// ListProposalsHandler godoc
// @Summary      List proposals ordered by votes
// @Tags         Proposals
// @Produce      json
// @Success      200  {array}  api.ProposalResponse
// @Router       /api/proposals [get]
func ListProposalsHandler(w http.ResponseWriter, r *http.Request) {
	withProposals(w, r, (*ProposalHandler).ListProposals)
}

// VoteProposalHandler godoc
// @Summary      Vote for a proposal
// @Tags         Proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  api.ProposalResponse
// @Failure      404  {object}  api.ErrorResponse  "Unknown proposal"
// @Router       /api/proposals/{id}/vote [post]
func VoteProposalHandler(w http.ResponseWriter, r *http.Request) {
	withProposals(w, r, (*ProposalHandler).VoteProposal)
}

// TopProposalHandler godoc
// @Summary      Most voted proposal
// @Tags         Proposals
// @Produce      json
// @Success      200  {object}  api.ProposalResponse
// @Failure      404  {object}  api.ErrorResponse  "Board is empty"
// @Router       /api/proposals/top [get]
func TopProposalHandler(w http.ResponseWriter, r *http.Request) {
	withProposals(w, r, (*ProposalHandler).TopProposal)
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With("traceId", logger_i.TraceId(r.Context()))

	var requestData api.ProposalRequest
	if err := decodeBody(w, r, config.MaxRequestBodyBytes, &requestData); err != nil {
		log.Warn("Bad proposal request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, api.ErrorInvalidBody)
		return
	}

	title := strings.TrimSpace(requestData.Title)
	if title == "" {
		WriteErrorResponse(w, http.StatusBadRequest, errorTitleRequired)
		return
	}
	if utf8.RuneCountInString(title) > config.MaxProposalTitleLength {
		WriteErrorResponse(w, http.StatusBadRequest, errorTitleTooLong)
		return
	}

	proposal := proposalModel.Proposal{
		Id:          utils.GetNewUUID(),
		Title:       title,
		CreatedTime: time.Now().UTC(),
	}
	if err := h.store.AddProposal(r.Context(), proposal); err != nil {
		log.Error("Could not save proposal", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, errorStore)
		return
	}
	log.Info("Proposal created", "id", proposal.Id)
	writeJsonResponse(w, http.StatusCreated, adapter.ToProposalResponse(proposal))
}

func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.store.List(r.Context(), config.MaxListedProposals)
	if err != nil {
		h.logger.Error("Could not list proposals", "traceId", logger_i.TraceId(r.Context()), "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, errorStore)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToProposalListResponse(proposals))
}

func (h *ProposalHandler) VoteProposal(w http.ResponseWriter, r *http.Request) {
	id := utils.GetChiURLParam(r, "id")
	if id == "" {
		WriteErrorResponse(w, http.StatusNotFound, errorProposalUnknown)
		return
	}

	proposal, err := h.store.Vote(r.Context(), id)
	switch {
	case errors.Is(err, proposalModel.ErrProposalNotFound):
		WriteErrorResponse(w, http.StatusNotFound, errorProposalUnknown)
		return
	case err != nil:
		h.logger.Error("Vote failed", "traceId", logger_i.TraceId(r.Context()), "id", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, errorStore)
		return
	}

	metrics.IncrementProposalVotes()
	writeJsonResponse(w, http.StatusOK, adapter.ToProposalResponse(proposal))
}

func (h *ProposalHandler) TopProposal(w http.ResponseWriter, r *http.Request) {
	proposal, found, err := h.store.Top(r.Context())
	if err != nil {
		h.logger.Error("Could not read top proposal", "traceId", logger_i.TraceId(r.Context()), "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, errorStore)
		return
	}
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, errorBoardEmpty)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToProposalResponse(proposal))
}
