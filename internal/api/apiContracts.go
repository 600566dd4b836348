package api

import "time"

const (
	ErrorFeedbackFailed = "AI feedback failed."
	ErrorInvalidBody    = "invalid request body."
)

// responses---------------------

type FeedbackResponse struct {
	Ok       bool              `json:"ok" example:"true"`
	Missing  []string          `json:"missing"`
	Snippets []SnippetResponse `json:"snippets"`
	Feedback string            `json:"feedback"`
	Error    string            `json:"error,omitempty"`
}

type SnippetResponse struct {
	Fname string `json:"fname" example:"parking_notice.pdf"`
	Text  string `json:"text" example:"불법주정차 단속 CCTV 운영 안내"`
	Score int    `json:"score" example:"2"`
}

type ErrorResponse struct {
	Ok    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"AI feedback failed."`
}

type ProposalResponse struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Votes       int64     `json:"votes"`
	CreatedTime time.Time `json:"created_time"`
}

// requests---------------------

type FeedbackRequest struct {
	Problem  string `json:"problem" example:"학교 앞에 차가 너무 많이 서있어요"`
	Proposal string `json:"proposal" example:"학교 앞에 단속 CCTV를 설치해 주세요"`
	Reason   string `json:"reason" example:"아이들이 길을 건널 때 위험해요"`
	Mode     string `json:"mode,omitempty" example:"cause"`
}

type ProposalRequest struct {
	Title string `json:"title"`
}
