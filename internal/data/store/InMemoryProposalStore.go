package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akolanti/ProposalFeedback/internal/domain/proposalModel"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem ProposalStore")

// InMemoryProposalStore is the fallback when redis is offline; votes are lost on restart.
type InMemoryProposalStore struct {
	lock      *sync.RWMutex
	proposals map[string]proposalModel.Proposal
}

func InitInMemoryProposalStore() *InMemoryProposalStore {
	return &InMemoryProposalStore{
		lock:      new(sync.RWMutex),
		proposals: make(map[string]proposalModel.Proposal),
	}
}

func (store *InMemoryProposalStore) AddProposal(ctx context.Context, proposal proposalModel.Proposal) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.proposals[proposal.Id] = proposal
	inMemLogger.Debug("Saved proposal", "id", proposal.Id)
	return nil
}

func (store *InMemoryProposalStore) Vote(ctx context.Context, id string) (proposalModel.Proposal, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	p, found := store.proposals[id]
	if !found {
		return proposalModel.Proposal{}, proposalModel.ErrProposalNotFound
	}
	p.Votes++
	store.proposals[id] = p
	return p, nil
}

// List orders like a redis ZREVRANGE: votes desc, then id desc.
func (store *InMemoryProposalStore) List(ctx context.Context, limit int) ([]proposalModel.Proposal, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	all := make([]proposalModel.Proposal, 0, len(store.proposals))
	for _, p := range store.proposals {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Votes != all[j].Votes {
			return all[i].Votes > all[j].Votes
		}
		return all[i].Id > all[j].Id
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (store *InMemoryProposalStore) Top(ctx context.Context) (proposalModel.Proposal, bool, error) {
	top, err := store.List(ctx, 1)
	if err != nil || len(top) == 0 {
		return proposalModel.Proposal{}, false, err
	}
	return top[0], true, nil
}
