// Package prompt turns a submission, its rubric result and the retrieved snippets into the
// system/user pair sent to the completion backend.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
)

//go:embed templates/default_system.tmpl
var defaultSystemTemplate string

//go:embed templates/cause_system.tmpl
var causeSystemTemplate string

//go:embed templates/user.tmpl
var userTemplate string

const noneMissing = "없음"

type Prompt struct {
	System string
	User   string
}

// Template is one feedback persona: its instruction text and how long the answer should be.
type Template struct {
	Mode         feedbackModel.Mode
	MinSentences int
	MaxSentences int
	system       *template.Template
}

type Composer struct {
	templates map[feedbackModel.Mode]Template
	user      *template.Template
}

type userData struct {
	Problem  string
	Proposal string
	Reason   string
	Snippets []commonModels.Snippet
	Missing  string
}

func NewComposer() (*Composer, error) {
	variants := []struct {
		mode     feedbackModel.Mode
		min, max int
		text     string
	}{
		{feedbackModel.ModeDefault, 4, 6, defaultSystemTemplate},
		{feedbackModel.ModeCause, 3, 5, causeSystemTemplate},
	}

	c := &Composer{templates: make(map[feedbackModel.Mode]Template, len(variants))}
	for _, v := range variants {
		t, err := template.New(string(v.mode)).Parse(v.text)
		if err != nil {
			return nil, fmt.Errorf("parse %s system template: %w", v.mode, err)
		}
		c.templates[v.mode] = Template{Mode: v.mode, MinSentences: v.min, MaxSentences: v.max, system: t}
	}

	user, err := template.New("user").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(userTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse user template: %w", err)
	}
	c.user = user
	return c, nil
}

// Template returns the variant for mode, unknown modes get the default persona.
func (c *Composer) Template(mode feedbackModel.Mode) Template {
	if t, ok := c.templates[mode]; ok {
		return t
	}
	return c.templates[feedbackModel.ModeDefault]
}

// Compose is pure: the same inputs always render the same prompt.
func (c *Composer) Compose(submission feedbackModel.Submission, rubric feedbackModel.RubricResult, snippets []commonModels.Snippet) (Prompt, error) {
	tmpl := c.Template(submission.Mode)

	var system bytes.Buffer
	if err := tmpl.system.Execute(&system, tmpl); err != nil {
		return Prompt{}, fmt.Errorf("render %s system prompt: %w", tmpl.Mode, err)
	}

	var user bytes.Buffer
	err := c.user.Execute(&user, userData{
		Problem:  submission.Problem,
		Proposal: submission.Proposal,
		Reason:   submission.Reason,
		Snippets: snippets,
		Missing:  missingLine(rubric),
	})
	if err != nil {
		return Prompt{}, fmt.Errorf("render user prompt: %w", err)
	}

	return Prompt{
		System: strings.TrimSpace(system.String()),
		User:   strings.TrimSpace(user.String()),
	}, nil
}

func missingLine(rubric feedbackModel.RubricResult) string {
	if rubric.Empty() {
		return noneMissing
	}
	return strings.Join(rubric.Labels(), ", ")
}
