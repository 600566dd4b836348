package feedbackModel

import "github.com/akolanti/ProposalFeedback/internal/domain/commonModels"

type Mode string

type Outcome string

const (
	ModeDefault Mode = "default"
	ModeCause   Mode = "cause"

	OutcomeGenerated    Outcome = "generated"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeFailed       Outcome = "failed"

	FieldProblem  = "problem"
	FieldProposal = "proposal"
	FieldReason   = "reason"
)

// ParseMode maps anything that isn't a known mode to ModeDefault.
func ParseMode(raw string) Mode {
	if Mode(raw) == ModeCause {
		return ModeCause
	}
	return ModeDefault
}

type Submission struct {
	Problem  string `json:"problem"`
	Proposal string `json:"proposal"`
	Reason   string `json:"reason"`
	Mode     Mode   `json:"mode"`
}

// Query is what retrieval searches with: the three fields followed by the domain keywords.
func (s Submission) Query(keywords string) string {
	return s.Problem + " " + s.Proposal + " " + s.Reason + " " + keywords
}

type RubricMiss struct {
	Field     string `json:"field"`
	Label     string `json:"label"`
	MinLength int    `json:"min_length"`
}

type RubricResult struct {
	Missing []RubricMiss `json:"missing"`
}

func (r RubricResult) Empty() bool {
	return len(r.Missing) == 0
}

func (r RubricResult) Labels() []string {
	labels := make([]string, 0, len(r.Missing))
	for _, m := range r.Missing {
		labels = append(labels, m.Label)
	}
	return labels
}

func (r RubricResult) Fields() []string {
	fields := make([]string, 0, len(r.Missing))
	for _, m := range r.Missing {
		fields = append(fields, m.Field)
	}
	return fields
}

type FeedbackRecord struct {
	Missing      RubricResult           `json:"missing"`
	Snippets     []commonModels.Snippet `json:"snippets"`
	FeedbackText string                 `json:"feedback"`
	Outcome      Outcome                `json:"outcome"`
}

func (f FeedbackRecord) Failed() bool {
	return f.Outcome == OutcomeFailed
}
