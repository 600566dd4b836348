package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/data/store"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
)

type mockService struct {
	onAssemble func(ctx context.Context, submission feedbackModel.Submission) feedbackModel.FeedbackRecord
	documents  []string
	received   feedbackModel.Submission
}

func (m *mockService) Assemble(ctx context.Context, submission feedbackModel.Submission) feedbackModel.FeedbackRecord {
	m.received = submission
	return m.onAssemble(ctx, submission)
}

func (m *mockService) Documents() []string {
	return m.documents
}

func fixedRecord(outcome feedbackModel.Outcome, text string) func(context.Context, feedbackModel.Submission) feedbackModel.FeedbackRecord {
	return func(context.Context, feedbackModel.Submission) feedbackModel.FeedbackRecord {
		return feedbackModel.FeedbackRecord{
			Missing: feedbackModel.RubricResult{Missing: []feedbackModel.RubricMiss{
				{Field: feedbackModel.FieldReason, Label: "제안하는 이유(10자+)", MinLength: 10},
			}},
			Snippets:     []commonModels.Snippet{{DocumentID: "notice.txt", Text: "주차 단속 안내", Score: 2}},
			FeedbackText: text,
			Outcome:      outcome,
		}
	}
}

func TestPostFeedback(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		outcome    feedbackModel.Outcome
		wantStatus int
		wantOk     bool
		wantError  string
	}{
		{"generated", `{"problem":"a","proposal":"b","reason":"c","mode":"cause"}`, feedbackModel.OutcomeGenerated, http.StatusOK, true, ""},
		{"unconfigured", `{"problem":"a"}`, feedbackModel.OutcomeUnconfigured, http.StatusOK, true, ""},
		{"failed", `{"problem":"a"}`, feedbackModel.OutcomeFailed, http.StatusBadGateway, false, api.ErrorFeedbackFailed},
		{"malformed", `{"problem":`, feedbackModel.OutcomeGenerated, http.StatusBadRequest, false, api.ErrorInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockService{onAssemble: fixedRecord(tt.outcome, "피드백")}
			h := NewFeedbackHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/feedback", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.PostFeedback(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var got api.FeedbackResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Ok != tt.wantOk || got.Error != tt.wantError {
				t.Errorf("ok=%v error=%q, want ok=%v error=%q", got.Ok, got.Error, tt.wantOk, tt.wantError)
			}
			if tt.wantStatus == http.StatusBadRequest {
				return
			}
			if diff := cmp.Diff([]string{"제안하는 이유(10자+)"}, got.Missing); diff != "" {
				t.Errorf("missing mismatch (-want +got):\n%s", diff)
			}
			if len(got.Snippets) != 1 || got.Snippets[0].Fname != "notice.txt" {
				t.Errorf("snippets = %+v", got.Snippets)
			}
		})
	}
}

func TestPostFeedback_PassesFieldsThrough(t *testing.T) {
	service := &mockService{onAssemble: fixedRecord(feedbackModel.OutcomeGenerated, "ok")}
	h := NewFeedbackHandler(service)

	body := `{"problem":"학교 앞 주차","proposal":"CCTV 설치","reason":"안전","mode":"cause"}`
	h.PostFeedback(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/ai/feedback", strings.NewReader(body)))

	want := feedbackModel.Submission{Problem: "학교 앞 주차", Proposal: "CCTV 설치", Reason: "안전", Mode: feedbackModel.ModeCause}
	if diff := cmp.Diff(want, service.received); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDocuments(t *testing.T) {
	h := NewFeedbackHandler(&mockService{documents: []string{"a.pdf", "b.txt"}})
	rec := httptest.NewRecorder()
	h.GetDocuments(rec, httptest.NewRequest(http.MethodGet, "/api/pdfs", nil))

	var got []string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"a.pdf", "b.txt"}, got); diff != "" {
		t.Errorf("documents mismatch (-want +got):\n%s", diff)
	}
}

func TestGetConfigHandler(t *testing.T) {
	InitConfigHandler(configFixture())
	rec := httptest.NewRecorder()
	GetConfigHandler(rec, httptest.NewRequest(http.MethodGet, "/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["kakaoJsKey"] != "kakao-key" {
		t.Errorf("kakaoJsKey = %v", got["kakaoJsKey"])
	}
	firebase, ok := got["firebase"].(map[string]any)
	if !ok || firebase["projectId"] != "demo-project" {
		t.Errorf("firebase = %v", got["firebase"])
	}
}

func proposalRouter(h *ProposalHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/proposals", h.CreateProposal)
	r.Get("/api/proposals", h.ListProposals)
	r.Post("/api/proposals/{id}/vote", h.VoteProposal)
	r.Get("/api/proposals/top", h.TopProposal)
	return r
}

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestProposalHandler_Flow(t *testing.T) {
	router := proposalRouter(NewProposalHandler(store.InitInMemoryProposalStore()))

	if rec := serve(t, router, http.MethodGet, "/api/proposals/top", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("top on empty board = %d, want 404", rec.Code)
	}

	rec := serve(t, router, http.MethodPost, "/api/proposals", `{"title":"  학교 앞 CCTV  "}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d, want 201", rec.Code)
	}
	var created api.ProposalResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Title != "학교 앞 CCTV" || created.Id == "" || created.Votes != 0 {
		t.Fatalf("created = %+v", created)
	}

	for i := 0; i < 2; i++ {
		if rec := serve(t, router, http.MethodPost, "/api/proposals/"+created.Id+"/vote", ""); rec.Code != http.StatusOK {
			t.Fatalf("vote = %d", rec.Code)
		}
	}

	rec = serve(t, router, http.MethodGet, "/api/proposals/top", "")
	var top api.ProposalResponse
	if err := json.NewDecoder(rec.Body).Decode(&top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if top.Id != created.Id || top.Votes != 2 {
		t.Errorf("top = %+v", top)
	}

	rec = serve(t, router, http.MethodGet, "/api/proposals", "")
	var list []api.ProposalResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list = %+v", list)
	}
}

func TestProposalHandler_Rejections(t *testing.T) {
	router := proposalRouter(NewProposalHandler(store.InitInMemoryProposalStore()))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"blank title", http.MethodPost, "/api/proposals", `{"title":"   "}`, http.StatusBadRequest, errorTitleRequired},
		{"missing title", http.MethodPost, "/api/proposals", `{}`, http.StatusBadRequest, errorTitleRequired},
		{"long title", http.MethodPost, "/api/proposals", `{"title":"` + strings.Repeat("가", 101) + `"}`, http.StatusBadRequest, errorTitleTooLong},
		{"malformed", http.MethodPost, "/api/proposals", `[`, http.StatusBadRequest, api.ErrorInvalidBody},
		{"unknown vote", http.MethodPost, "/api/proposals/nope/vote", "", http.StatusNotFound, errorProposalUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var got api.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Ok || got.Error != tt.wantError {
				t.Errorf("got %+v, want error %q", got, tt.wantError)
			}
		})
	}
}
