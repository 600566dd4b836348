package redisStore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type ScoredMember struct {
	Member string
	Score  float64
}

func (s *Store) IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Exists(ctx, key).Result()
	return count > 0, err
}

func (s *Store) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	return s.client.HGetAll(ctx, key).Result()
}

// HashSetWithRank writes the hash and adds member to the sorted set in one transaction,
// so a listed member always has its hash.
func (s *Store) HashSetWithRank(ctx context.Context, hashKey string, fields map[string]interface{}, rankKey string, member string, score float64) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, fields)
		pipe.ZAdd(ctx, rankKey, redis.Z{Score: score, Member: member})
		return nil
	})
	return err
}

func (s *Store) RankIncrement(ctx context.Context, rankKey string, member string, by float64) (float64, error) {
	return s.client.ZIncrBy(ctx, rankKey, by, member).Result()
}

// RankTop returns the highest scored members first, at most limit of them.
func (s *Store) RankTop(ctx context.Context, rankKey string, limit int64) ([]ScoredMember, error) {
	if limit <= 0 {
		return []ScoredMember{}, nil
	}
	result, err := s.client.ZRevRangeWithScores(ctx, rankKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	members := make([]ScoredMember, 0, len(result))
	for _, z := range result {
		member, _ := z.Member.(string)
		members = append(members, ScoredMember{Member: member, Score: z.Score})
	}
	return members, nil
}
