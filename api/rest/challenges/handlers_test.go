package challenges

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/challenges"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// in-memory challenges.Store backed by maps, mirroring the database
// uniqueness constraint on (challenge, user)
type memStore struct {
	nextID       int
	byID         map[string]*challenges.Challenge
	participants map[string]map[string]*challenges.Participant
}

func newMemStore() *memStore {
	return &memStore{
		byID:         map[string]*challenges.Challenge{},
		participants: map[string]map[string]*challenges.Participant{},
	}
}

func (s *memStore) Create(_ context.Context, createdBy string, req challenges.CreateChallengeRequest) (*challenges.Challenge, error) {
	s.nextID++
	ch := &challenges.Challenge{
		ID:          fmt.Sprintf("challenge-%d", s.nextID),
		Title:       req.Title,
		Description: req.Description,
		Platform:    req.Platform,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Difficulty:  req.Difficulty,
		CreatedBy:   createdBy,
		CreatedAt:   testNow,
	}
	s.byID[ch.ID] = ch
	s.participants[ch.ID] = map[string]*challenges.Participant{}
	return ch, nil
}

func (s *memStore) Get(_ context.Context, id string) (*challenges.Challenge, error) {
	ch, ok := s.byID[id]
	if !ok {
		return nil, challenges.ErrNotFound
	}
	copied := *ch
	return &copied, nil
}

func (s *memStore) Join(_ context.Context, challengeID, userID string) error {
	members, ok := s.participants[challengeID]
	if !ok {
		return challenges.ErrNotFound
	}

	if _, joined := members[userID]; joined {
		return challenges.ErrAlreadyJoined
	}

	members[userID] = &challenges.Participant{
		UserID:   userID,
		Username: userID,
		Status:   "pending",
	}
	return nil
}

func (s *memStore) Participants(_ context.Context, challengeID string) ([]challenges.Participant, error) {
	members, ok := s.participants[challengeID]
	if !ok {
		return nil, challenges.ErrNotFound
	}

	list := []challenges.Participant{}
	for _, p := range members {
		list = append(list, *p)
	}
	return list, nil
}

func (s *memStore) UpdateScore(_ context.Context, challengeID, userID string, score int) error {
	members, ok := s.participants[challengeID]
	if !ok {
		return challenges.ErrNotFound
	}

	p, joined := members[userID]
	if !joined {
		return challenges.ErrNotJoined
	}

	p.Score = score
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memStore, *auth.Codec, *challenges.LeaderboardCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := auth.NewCodecWithClock("test-secret-key-for-testing", auth.DefaultTokenTTL, func() time.Time {
		return testNow
	})
	require.NoError(t, err)

	mini := miniredis.RunT(t)
	cache := challenges.NewLeaderboardCacheWithClient(redis.NewClient(&redis.Options{
		Addr: mini.Addr(),
	}), time.Minute)
	t.Cleanup(func() {
		_ = cache.Close()
	})

	store := newMemStore()

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), store, cache, codec)

	return router, store, codec, cache
}

func tokenFor(t *testing.T, codec *auth.Codec, userID string) string {
	t.Helper()

	token, err := codec.Encode(userID, userID+"@x.com")
	require.NoError(t, err)
	return token
}

func request(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createChallenge(t *testing.T, router *gin.Engine, codec *auth.Codec) string {
	t.Helper()

	w := request(router, http.MethodPost, "/api/v1/challenges", tokenFor(t, codec, "creator"), challenges.CreateChallengeRequest{
		Title: "weekly sprint",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ch challenges.Challenge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))
	return ch.ID
}

func TestChallenges_RequireAuth(t *testing.T) {
	router, store, _, _ := newTestRouter(t)

	w := request(router, http.MethodPost, "/api/v1/challenges", "", challenges.CreateChallengeRequest{
		Title: "weekly sprint",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.byID)
}

func TestJoinChallenge_DuplicateRejected(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)
	id := createChallenge(t, router, codec)

	first := request(router, http.MethodPost, "/api/v1/challenges/"+id+"/join", tokenFor(t, codec, "alice"), nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := request(router, http.MethodPost, "/api/v1/challenges/"+id+"/join", tokenFor(t, codec, "alice"), nil)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "already joined")
}

func TestJoinChallenge_UnknownChallenge(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)

	w := request(router, http.MethodPost, "/api/v1/challenges/nope/join", tokenFor(t, codec, "alice"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboard_RanksByScore(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)
	id := createChallenge(t, router, codec)

	for _, user := range []string{"alice", "bob", "carol"} {
		w := request(router, http.MethodPost, "/api/v1/challenges/"+id+"/join", tokenFor(t, codec, user), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	scores := map[string]int{"alice": 10, "bob": 40, "carol": 25}
	for user, score := range scores {
		w := request(router, http.MethodPut, "/api/v1/challenges/"+id+"/score", tokenFor(t, codec, user), UpdateScoreRequest{Score: score})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := request(router, http.MethodGet, "/api/v1/challenges/"+id+"/leaderboard", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []challenges.LeaderboardEntry{
		{Rank: 1, Username: "bob", Score: 40},
		{Rank: 2, Username: "carol", Score: 25},
		{Rank: 3, Username: "alice", Score: 10},
	}, resp.Leaderboard)
}

func TestLeaderboard_ServedFromCacheWhenWarm(t *testing.T) {
	router, store, codec, _ := newTestRouter(t)
	id := createChallenge(t, router, codec)

	join := request(router, http.MethodPost, "/api/v1/challenges/"+id+"/join", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, join.Code)

	// first read populates the cache
	first := request(router, http.MethodGet, "/api/v1/challenges/"+id+"/leaderboard", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, first.Code)

	// mutate the store behind the cache's back; the warm cache still
	// serves the previous standing
	require.NoError(t, store.UpdateScore(context.Background(), id, "alice", 99))

	second := request(router, http.MethodGet, "/api/v1/challenges/"+id+"/leaderboard", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, second.Code)

	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	require.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, 0, resp.Leaderboard[0].Score)
}

func TestUpdateScore_InvalidatesCache(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)
	id := createChallenge(t, router, codec)

	join := request(router, http.MethodPost, "/api/v1/challenges/"+id+"/join", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, join.Code)

	warm := request(router, http.MethodGet, "/api/v1/challenges/"+id+"/leaderboard", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, warm.Code)

	update := request(router, http.MethodPut, "/api/v1/challenges/"+id+"/score", tokenFor(t, codec, "alice"), UpdateScoreRequest{Score: 50})
	require.Equal(t, http.StatusOK, update.Code)

	w := request(router, http.MethodGet, "/api/v1/challenges/"+id+"/leaderboard", tokenFor(t, codec, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, 50, resp.Leaderboard[0].Score)
}

func TestUpdateScore_NotJoined(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)
	id := createChallenge(t, router, codec)

	w := request(router, http.MethodPut, "/api/v1/challenges/"+id+"/score", tokenFor(t, codec, "stranger"), UpdateScoreRequest{Score: 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboard_UnknownChallenge(t *testing.T) {
	router, _, codec, _ := newTestRouter(t)

	w := request(router, http.MethodGet, "/api/v1/challenges/nope/leaderboard", tokenFor(t, codec, "alice"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
