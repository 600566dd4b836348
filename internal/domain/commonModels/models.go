package commonModels

// Document is one reference file of the corpus, split into paragraphs at load time.
type Document struct {
	ID          string   `json:"fname"`
	ContentType DocType  `json:"contentType"`
	Paragraphs  []string `json:"paragraphs"`
}

// Corpus is immutable once built; share it freely between requests.
type Corpus struct {
	documents []Document
}

type Snippet struct {
	DocumentID string `json:"fname"`
	Text       string `json:"text"`
	Score      int    `json:"score"`
}

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"

// NewCorpus keeps the first document for every id, in the given order.
func NewCorpus(docs []Document) Corpus {
	seen := make(map[string]bool, len(docs))
	kept := make([]Document, 0, len(docs))
	for _, d := range docs {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		paragraphs := make([]string, len(d.Paragraphs))
		copy(paragraphs, d.Paragraphs)
		d.Paragraphs = paragraphs
		kept = append(kept, d)
	}
	return Corpus{documents: kept}
}

func (c Corpus) Documents() []Document {
	return c.documents
}

func (c Corpus) IDs() []string {
	ids := make([]string, 0, len(c.documents))
	for _, d := range c.documents {
		ids = append(ids, d.ID)
	}
	return ids
}

func (c Corpus) Len() int {
	return len(c.documents)
}

func (c Corpus) ParagraphCount() int {
	n := 0
	for _, d := range c.documents {
		n += len(d.Paragraphs)
	}
	return n
}
