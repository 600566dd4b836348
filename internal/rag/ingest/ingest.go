package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"golang.org/x/sync/errgroup"
)

type LoadOutcome string

const (
	Loaded              LoadOutcome = "loaded"
	DirectoryMissing    LoadOutcome = "directory_missing"
	DirectoryUnreadable LoadOutcome = "directory_unreadable"
	Cancelled           LoadOutcome = "cancelled"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger = logger_i.NewLogger("Corpus Loader")

// LoadCorpus reads every supported document in dir once. It never fails: an absent or unreadable
// directory gives an empty corpus and the outcome says why.
func LoadCorpus(ctx context.Context, dir string) (commonModels.Corpus, LoadOutcome) {
	log := logger.With("dir", dir)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("Corpus directory does not exist, serving an empty corpus")
		return commonModels.NewCorpus(nil), DirectoryMissing
	}
	if err != nil {
		log.Error("Corpus directory unreadable, serving an empty corpus", "error", err)
		return commonModels.NewCorpus(nil), DirectoryUnreadable
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || getDocType(entry.Name()) == commonModels.ERR {
			continue
		}
		files = append(files, entry.Name())
	}
	log.Debug("Supported documents found", "count", len(files))

	//one slot per file keeps directory order no matter which extraction finishes first
	docs := make([]*commonModels.Document, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.CorpusLoadConcurrency)

	for i, name := range files {
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return groupCtx.Err()
			}
			doc, err := loadDocument(filepath.Join(dir, name))
			if err != nil {
				log.Warn("Skipping unreadable document", "file", name, "error", err)
				return nil
			}
			docs[i] = &doc
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Warn("Corpus load cancelled", "error", err)
		return commonModels.NewCorpus(nil), Cancelled
	}

	loaded := make([]commonModels.Document, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			loaded = append(loaded, *d)
		}
	}
	corpus := commonModels.NewCorpus(loaded)
	log.Info("Corpus indexed", "documents", corpus.IDs(), "paragraphs", corpus.ParagraphCount())
	return corpus, Loaded
}

func loadDocument(path string) (commonModels.Document, error) {
	docType := getDocType(path)
	pages, err := extractText(path, docType)
	if err != nil {
		return commonModels.Document{}, err
	}
	return commonModels.Document{
		ID:          filepath.Base(path),
		ContentType: docType,
		Paragraphs:  splitParagraphs(joinPages(pages)),
	}, nil
}
