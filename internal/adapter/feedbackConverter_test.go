package adapter

import (
	"testing"

	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/google/go-cmp/cmp"
)

func TestToFeedbackResponse(t *testing.T) {
	missing := feedbackModel.RubricResult{Missing: []feedbackModel.RubricMiss{
		{Field: feedbackModel.FieldProposal, Label: "제안하는 내용(10자+)", MinLength: 10},
	}}
	snippets := []commonModels.Snippet{{DocumentID: "a.pdf", Text: "주차 단속", Score: 2}}

	tests := []struct {
		name   string
		record feedbackModel.FeedbackRecord
		want   api.FeedbackResponse
	}{
		{
			name:   "generated",
			record: feedbackModel.FeedbackRecord{Missing: missing, Snippets: snippets, FeedbackText: "좋아요", Outcome: feedbackModel.OutcomeGenerated},
			want: api.FeedbackResponse{
				Ok: true, Missing: []string{"제안하는 내용(10자+)"},
				Snippets: []api.SnippetResponse{{Fname: "a.pdf", Text: "주차 단속", Score: 2}},
				Feedback: "좋아요",
			},
		},
		{
			name:   "unconfigured is still ok",
			record: feedbackModel.FeedbackRecord{Missing: feedbackModel.RubricResult{}, Snippets: nil, FeedbackText: "❌ placeholder", Outcome: feedbackModel.OutcomeUnconfigured},
			want:   api.FeedbackResponse{Ok: true, Missing: []string{}, Snippets: []api.SnippetResponse{}, Feedback: "❌ placeholder"},
		},
		{
			name:   "failed keeps partial data",
			record: feedbackModel.FeedbackRecord{Missing: missing, Snippets: snippets, FeedbackText: "실패", Outcome: feedbackModel.OutcomeFailed},
			want: api.FeedbackResponse{
				Ok: false, Missing: []string{"제안하는 내용(10자+)"},
				Snippets: []api.SnippetResponse{{Fname: "a.pdf", Text: "주차 단속", Score: 2}},
				Feedback: "실패", Error: api.ErrorFeedbackFailed,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ToFeedbackResponse(tt.record)); diff != "" {
				t.Errorf("ToFeedbackResponse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToSubmission_Mode(t *testing.T) {
	if got := ToSubmission(api.FeedbackRequest{Mode: "cause"}).Mode; got != feedbackModel.ModeCause {
		t.Errorf("mode = %s", got)
	}
	if got := ToSubmission(api.FeedbackRequest{}).Mode; got != feedbackModel.ModeDefault {
		t.Errorf("missing mode = %s", got)
	}
}
