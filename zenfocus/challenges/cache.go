package challenges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// returned by the cache when no leaderboard is stored for a challenge
var ErrCacheMiss = errors.New("leaderboard not cached")

// caches ranked leaderboards in a Redis sorted set per challenge.
// The cache is an accelerator only: callers fall back to Postgres on
// any miss or error.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// creates a leaderboard cache from a Redis URL
func NewLeaderboardCache(redisURL string, ttl time.Duration) (*LeaderboardCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewLeaderboardCacheWithClient(client, ttl), nil
}

// creates a leaderboard cache around an existing client, used by tests
func NewLeaderboardCacheWithClient(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func leaderboardKey(challengeID string) string {
	return "challenge:" + challengeID + ":leaderboard"
}

// stores the participants of one challenge as a sorted set
func (c *LeaderboardCache) Set(ctx context.Context, challengeID string, participants []Participant) error {
	key := leaderboardKey(challengeID)

	members := make([]redis.Z, len(participants))
	for i, p := range participants {
		members[i] = redis.Z{
			Score:  float64(p.Score),
			Member: p.Username,
		}
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	pipe.Expire(ctx, key, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache leaderboard: %w", err)
	}

	return nil
}

// reads the ranked leaderboard for one challenge. Returns ErrCacheMiss
// when the key is absent or expired.
func (c *LeaderboardCache) Get(ctx context.Context, challengeID string) ([]LeaderboardEntry, error) {
	key := leaderboardKey(challengeID)

	members, err := c.client.ZRevRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached leaderboard: %w", err)
	}

	if len(members) == 0 {
		return nil, ErrCacheMiss
	}

	leaderboard := make([]LeaderboardEntry, len(members))

	for i, member := range members {
		username, _ := member.Member.(string)
		leaderboard[i] = LeaderboardEntry{
			Rank:     i + 1,
			Username: username,
			Score:    int(member.Score),
		}
	}

	return leaderboard, nil
}

// drops the cached leaderboard for one challenge, forcing the next
// read back to Postgres
func (c *LeaderboardCache) Invalidate(ctx context.Context, challengeID string) error {
	return c.client.Del(ctx, leaderboardKey(challengeID)).Err()
}

// closes the underlying Redis connection
func (c *LeaderboardCache) Close() error {
	return c.client.Close()
}
