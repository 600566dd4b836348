// Package retrieval scores corpus paragraphs against a free-text query by lexical term overlap.
package retrieval

import (
	"sort"
	"strings"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
)

// Retrieve returns at most topK snippets, best score first. A term scores when it occurs anywhere in
// the paragraph, including inside a longer word, and counts once however often it occurs.
// Ties keep corpus order. topK <= 0 uses the default.
func Retrieve(corpus commonModels.Corpus, query string, topK int) []commonModels.Snippet {
	if topK <= 0 {
		topK = config.DefaultTopK
	}

	terms := queryTerms(query)
	scored := []commonModels.Snippet{}
	if len(terms) == 0 {
		return scored
	}

	for _, doc := range corpus.Documents() {
		for _, paragraph := range doc.Paragraphs {
			s := score(strings.ToLower(paragraph), terms)
			if s == 0 {
				continue
			}
			scored = append(scored, commonModels.Snippet{DocumentID: doc.ID, Text: paragraph, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// queryTerms lowercases, splits on whitespace and drops repeated terms
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}

func score(lowerText string, terms []string) int {
	s := 0
	for _, t := range terms {
		if strings.Contains(lowerText, t) {
			s++
		}
	}
	return s
}
