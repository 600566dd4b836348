package ingest

import (
	"sync/atomic"

	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
)

// Holder hands out the process-wide corpus. It starts empty and is published exactly once
// when the startup load finishes; readers never block.
type Holder struct {
	current   atomic.Pointer[commonModels.Corpus]
	published atomic.Bool
}

func NewHolder() *Holder {
	h := &Holder{}
	empty := commonModels.NewCorpus(nil)
	h.current.Store(&empty)
	return h
}

func (h *Holder) Current() commonModels.Corpus {
	return *h.current.Load()
}

func (h *Holder) Ready() bool {
	return h.published.Load()
}

// Publish replaces the empty startup corpus. Later calls are ignored, there is no hot reload.
func (h *Holder) Publish(corpus commonModels.Corpus) bool {
	if !h.published.CompareAndSwap(false, true) {
		return false
	}
	h.current.Store(&corpus)
	return true
}
