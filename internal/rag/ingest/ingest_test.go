package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/google/go-cmp/cmp"
)

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"test.pdf", commonModels.PDF},
		{"REPORT.PDF", commonModels.PDF},
		{"DOC.DOCX", commonModels.DOCX},
		{"notes.txt", commonModels.TXT},
		{"image.png", commonModels.ERR},
		{"no_extension", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := getDocType(tt.path); got != tt.expected {
			t.Errorf("getDocType(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\n \t \n", nil},
		{"single paragraph keeps inner newlines", "line one\nline two", []string{"line one\nline two"}},
		{"blank line splits", "first\n\nsecond", []string{"first", "second"}},
		{"whitespace-only line splits", "first\n   \t\nsecond", []string{"first", "second"}},
		{"several blank lines", "first\n\n\n\n  second  \n\n", []string{"first", "second"}},
		{"windows newlines", "first\r\n\r\nsecond", []string{"first", "second"}},
		{"korean", "CCTV 설치는 효과적이다\n\n공영주차장 확충이 필요하다", []string{"CCTV 설치는 효과적이다", "공영주차장 확충이 필요하다"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParagraphs(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitParagraphs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinPages_PageBoundaryIsParagraphBoundary(t *testing.T) {
	pages := []rawPage{{Number: 1, Content: "end of page one"}, {Number: 2, Content: "start of page two"}}
	got := splitParagraphs(joinPages(pages))
	want := []string{"end of page one", "start of page two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCorpus_MissingDirectory(t *testing.T) {
	corpus, outcome := LoadCorpus(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	if outcome != DirectoryMissing {
		t.Errorf("outcome = %s, want %s", outcome, DirectoryMissing)
	}
	if corpus.Len() != 0 {
		t.Errorf("expected empty corpus, got %d documents", corpus.Len())
	}
}

func TestLoadCorpus_ReadsSupportedFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_notice.txt", "주차 단속 안내\n\n\n불법주정차 신고 방법")
	writeFile(t, dir, "a_report.txt", "CCTV 설치는 효과적이다\n\n공영주차장 확충이 필요하다")
	writeFile(t, dir, "photo.png", "not a document")
	writeFile(t, dir, "empty.txt", "  \n\n  ")
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	corpus, outcome := LoadCorpus(context.Background(), dir)
	if outcome != Loaded {
		t.Fatalf("outcome = %s, want %s", outcome, Loaded)
	}

	if diff := cmp.Diff([]string{"a_report.txt", "b_notice.txt", "empty.txt"}, corpus.IDs()); diff != "" {
		t.Errorf("document ids mismatch (-want +got):\n%s", diff)
	}

	docs := corpus.Documents()
	if diff := cmp.Diff([]string{"CCTV 설치는 효과적이다", "공영주차장 확충이 필요하다"}, docs[0].Paragraphs); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if len(docs[2].Paragraphs) != 0 {
		t.Errorf("whitespace-only document should have no paragraphs, got %q", docs[2].Paragraphs)
	}
	if docs[0].ContentType != commonModels.TXT {
		t.Errorf("content type = %s", docs[0].ContentType)
	}
}

func TestLoadCorpus_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "something")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	corpus, outcome := LoadCorpus(ctx, dir)
	if outcome != Cancelled {
		t.Errorf("outcome = %s, want %s", outcome, Cancelled)
	}
	if corpus.Len() != 0 {
		t.Errorf("cancelled load should publish nothing, got %d documents", corpus.Len())
	}
}

func TestHolder_PublishOnce(t *testing.T) {
	h := NewHolder()
	if h.Current().Len() != 0 || h.Ready() {
		t.Fatal("holder should start empty and not ready")
	}

	first := commonModels.NewCorpus([]commonModels.Document{{ID: "a.pdf", Paragraphs: []string{"x"}}})
	if !h.Publish(first) {
		t.Fatal("first publish should succeed")
	}
	second := commonModels.NewCorpus([]commonModels.Document{{ID: "b.pdf"}})
	if h.Publish(second) {
		t.Error("second publish should be ignored")
	}
	if diff := cmp.Diff([]string{"a.pdf"}, h.Current().IDs()); diff != "" {
		t.Errorf("corpus changed after second publish (-want +got):\n%s", diff)
	}
}

func TestHolder_EmptyPublishStillCounts(t *testing.T) {
	h := NewHolder()
	h.Publish(commonModels.NewCorpus(nil))
	if !h.Ready() {
		t.Error("holder should be ready after an empty publish")
	}
	if h.Publish(commonModels.NewCorpus([]commonModels.Document{{ID: "late.pdf"}})) {
		t.Error("publish after an empty load must still be ignored")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func openFileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	return len(entries)
}

func TestExtractPDF_ClosesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not really a pdf")
	path := filepath.Join(dir, "broken.pdf")

	before := openFileCount(t)
	for i := 0; i < 10; i++ {
		if _, err := extractPDF(path); err == nil {
			t.Fatal("expected an error for a broken pdf")
		}
	}
	if after := openFileCount(t); after > before {
		t.Errorf("open files grew from %d to %d", before, after)
	}
}
