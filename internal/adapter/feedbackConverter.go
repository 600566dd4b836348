package adapter

import (
	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/akolanti/ProposalFeedback/internal/domain/proposalModel"
)

func ToSubmission(req api.FeedbackRequest) feedbackModel.Submission {
	return feedbackModel.Submission{
		Problem:  req.Problem,
		Proposal: req.Proposal,
		Reason:   req.Reason,
		Mode:     feedbackModel.ParseMode(req.Mode),
	}
}

// ToFeedbackResponse marks failed completions as not ok but keeps the rubric and snippets.
func ToFeedbackResponse(record feedbackModel.FeedbackRecord) api.FeedbackResponse {
	snippets := make([]api.SnippetResponse, 0, len(record.Snippets))
	for _, s := range record.Snippets {
		snippets = append(snippets, api.SnippetResponse{Fname: s.DocumentID, Text: s.Text, Score: s.Score})
	}

	response := api.FeedbackResponse{
		Ok:       !record.Failed(),
		Missing:  record.Missing.Labels(),
		Snippets: snippets,
		Feedback: record.FeedbackText,
	}
	if record.Failed() {
		response.Error = api.ErrorFeedbackFailed
	}
	return response
}

func ToProposalResponse(p proposalModel.Proposal) api.ProposalResponse {
	return api.ProposalResponse{
		Id:          p.Id,
		Title:       p.Title,
		Votes:       p.Votes,
		CreatedTime: p.CreatedTime,
	}
}

func ToProposalListResponse(proposals []proposalModel.Proposal) []api.ProposalResponse {
	list := make([]api.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		list = append(list, ToProposalResponse(p))
	}
	return list
}

func BadRequest(error string) api.ErrorResponse {
	return api.ErrorResponse{
		Ok:    false,
		Error: error,
	}
}
