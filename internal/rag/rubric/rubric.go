// Package rubric checks a submission against the fixed three-field content policy.
package rubric

import (
	"strings"
	"unicode/utf8"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
)

type rule struct {
	field string
	label string
	value func(feedbackModel.Submission) string
}

// order matters: labels are shown to students in exactly this sequence
var rules = []rule{
	{feedbackModel.FieldProblem, "문제상황(10자+)", func(s feedbackModel.Submission) string { return s.Problem }},
	{feedbackModel.FieldProposal, "제안하는 내용(10자+)", func(s feedbackModel.Submission) string { return s.Proposal }},
	{feedbackModel.FieldReason, "제안하는 이유(10자+)", func(s feedbackModel.Submission) string { return s.Reason }},
}

// Validate returns the fields that are absent or shorter than the minimum after trimming.
// Length counts characters, not bytes, so Hangul is measured the way a student would count it.
func Validate(submission feedbackModel.Submission) feedbackModel.RubricResult {
	result := feedbackModel.RubricResult{Missing: []feedbackModel.RubricMiss{}}
	for _, r := range rules {
		if tooShort(r.value(submission)) {
			result.Missing = append(result.Missing, feedbackModel.RubricMiss{
				Field:     r.field,
				Label:     r.label,
				MinLength: config.RubricMinLength,
			})
		}
	}
	return result
}

func tooShort(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) < config.RubricMinLength
}
