package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
)

// a blank line is a newline, any whitespace (including more newlines), then a newline
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range paragraphBreak.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paragraphs = append(paragraphs, part)
	}
	return paragraphs
}

// pages always end a paragraph
func joinPages(pages []rawPage) string {
	contents := make([]string, 0, len(pages))
	for _, p := range pages {
		contents = append(contents, p.Content)
	}
	return strings.Join(contents, "\n\n")
}

func getDocType(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".odt", ".rtf":
		return commonModels.DOCX
	case ".txt":
		return commonModels.TXT
	default:
		return commonModels.ERR
	}
}

func extractText(path string, contentType commonModels.DocType) ([]rawPage, error) {
	switch contentType {
	case commonModels.PDF:
		return extractPDF(path)
	case commonModels.DOCX, commonModels.TXT:
		return extractDocument(path)

	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
