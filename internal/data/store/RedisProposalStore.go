package store

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/data/redisStore"
	"github.com/akolanti/ProposalFeedback/internal/domain/proposalModel"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
)

const (
	rankKey      = "proposals:votes"
	proposalKey  = "proposal:"
	fieldTitle   = "title"
	fieldCreated = "created"
)

type RedisProposalStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisProposalStore returns nil when redis is unavailable so the caller can fall back.
func GetRedisProposalStore(ctx context.Context, cfg config.RedisConfig) *RedisProposalStore {
	s := redisStore.GetRedisStore(ctx, cfg, config.RedisProposalStore)
	if s == nil {
		return nil
	}
	return &RedisProposalStore{
		store:  s,
		logger: logger_i.NewLogger("ProposalStore"),
	}
}

func (s *RedisProposalStore) AddProposal(ctx context.Context, proposal proposalModel.Proposal) error {
	log := s.logger.With("traceId", logger_i.TraceId(ctx), "proposal Id", proposal.Id)
	log.Debug("saving proposal")

	fields := map[string]interface{}{
		fieldTitle:   proposal.Title,
		fieldCreated: proposal.CreatedTime.UTC().Format(time.RFC3339Nano),
	}
	err := s.store.HashSetWithRank(ctx, proposalKey+proposal.Id, fields, rankKey, proposal.Id, float64(proposal.Votes))
	if err != nil {
		log.Error("Error saving proposal", "error", err)
		return err
	}
	return nil
}

func (s *RedisProposalStore) Vote(ctx context.Context, id string) (proposalModel.Proposal, error) {
	log := s.logger.With("traceId", logger_i.TraceId(ctx), "proposal Id", id)

	exists, err := s.store.Exists(ctx, proposalKey+id)
	if err != nil {
		return proposalModel.Proposal{}, err
	}
	if !exists {
		return proposalModel.Proposal{}, proposalModel.ErrProposalNotFound
	}

	votes, err := s.store.RankIncrement(ctx, rankKey, id, 1)
	if err != nil {
		log.Error("Error counting vote", "error", err)
		return proposalModel.Proposal{}, err
	}
	p, err := s.load(ctx, id, votes)
	if err != nil {
		return proposalModel.Proposal{}, err
	}
	log.Debug("vote counted", "votes", p.Votes)
	return p, nil
}

func (s *RedisProposalStore) List(ctx context.Context, limit int) ([]proposalModel.Proposal, error) {
	ranked, err := s.store.RankTop(ctx, rankKey, int64(limit))
	if err != nil {
		return nil, err
	}
	proposals := make([]proposalModel.Proposal, 0, len(ranked))
	for _, r := range ranked {
		p, err := s.load(ctx, r.Member, r.Score)
		if err != nil {
			s.logger.Warn("Skipping proposal without a hash", "id", r.Member, "error", err)
			continue
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

func (s *RedisProposalStore) Top(ctx context.Context) (proposalModel.Proposal, bool, error) {
	top, err := s.List(ctx, 1)
	if err != nil || len(top) == 0 {
		return proposalModel.Proposal{}, false, err
	}
	return top[0], true, nil
}

func (s *RedisProposalStore) load(ctx context.Context, id string, votes float64) (proposalModel.Proposal, error) {
	fields, err := s.store.HashGetAll(ctx, proposalKey+id)
	if err != nil {
		return proposalModel.Proposal{}, err
	}
	if len(fields) == 0 {
		return proposalModel.Proposal{}, fmt.Errorf("proposal %s: %w", id, proposalModel.ErrProposalNotFound)
	}
	created, _ := time.Parse(time.RFC3339Nano, fields[fieldCreated])
	return proposalModel.Proposal{
		Id:          id,
		Title:       fields[fieldTitle],
		Votes:       int64(votes),
		CreatedTime: created,
	}, nil
}

func TestProposalStore(store *redisStore.Store) *RedisProposalStore {
	return &RedisProposalStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
