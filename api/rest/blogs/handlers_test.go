package blogs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/blogs"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// in-memory blogs.Store
type memStore struct {
	nextID int
	byID   map[string]*blogs.Blog
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]*blogs.Blog{}}
}

func (s *memStore) List(_ context.Context) ([]blogs.Blog, error) {
	list := []blogs.Blog{}
	for _, b := range s.byID {
		list = append(list, *b)
	}
	return list, nil
}

func (s *memStore) Get(_ context.Context, id string) (*blogs.Blog, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, blogs.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *memStore) Create(_ context.Context, userID string, req blogs.CreateBlogRequest) (*blogs.Blog, error) {
	s.nextID++
	b := &blogs.Blog{
		ID:        fmt.Sprintf("blog-%d", s.nextID),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Tags:      req.Tags,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	s.byID[b.ID] = b
	return b, nil
}

func (s *memStore) Update(_ context.Context, id string, req blogs.UpdateBlogRequest) (*blogs.Blog, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, blogs.ErrNotFound
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Content != nil {
		b.Content = *req.Content
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.Tags != nil {
		b.Tags = *req.Tags
	}

	copied := *b
	return &copied, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return blogs.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memStore, *auth.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := auth.NewCodecWithClock("test-secret-key-for-testing", auth.DefaultTokenTTL, func() time.Time {
		return testNow
	})
	require.NoError(t, err)

	store := newMemStore()

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), store, codec)

	return router, store, codec
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

func TestCreateBlog_RequiresAuth(t *testing.T) {
	router, store, _ := newTestRouter(t)

	w := request(router, http.MethodPost, "/api/v1/blogs", "", blogs.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.byID)
}

func TestCreateBlog_AuthorIsTakenFromToken(t *testing.T) {
	router, store, codec := newTestRouter(t)

	w := request(router, http.MethodPost, "/api/v1/blogs", tokenFor(t, codec, "user-a"), blogs.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created blogs.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, "user-a", store.byID[created.ID].UserID)
}

func TestUpdateBlog_OwnerOnly(t *testing.T) {
	router, _, codec := newTestRouter(t)

	created := request(router, http.MethodPost, "/api/v1/blogs", tokenFor(t, codec, "user-a"), blogs.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var blog blogs.Blog
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &blog))

	newTitle := "edited"

	intruder := request(router, http.MethodPut, "/api/v1/blogs/"+blog.ID, tokenFor(t, codec, "user-b"), blogs.UpdateBlogRequest{
		Title: &newTitle,
	})
	assert.Equal(t, http.StatusForbidden, intruder.Code)

	owner := request(router, http.MethodPut, "/api/v1/blogs/"+blog.ID, tokenFor(t, codec, "user-a"), blogs.UpdateBlogRequest{
		Title: &newTitle,
	})
	require.Equal(t, http.StatusOK, owner.Code)

	var updated blogs.Blog
	require.NoError(t, json.Unmarshal(owner.Body.Bytes(), &updated))
	assert.Equal(t, "edited", updated.Title)
	assert.Equal(t, "world", updated.Content, "unspecified fields keep their value")
}

func TestDeleteBlog_OwnerOnly(t *testing.T) {
	router, store, codec := newTestRouter(t)

	created := request(router, http.MethodPost, "/api/v1/blogs", tokenFor(t, codec, "user-a"), blogs.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var blog blogs.Blog
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &blog))

	intruder := request(router, http.MethodDelete, "/api/v1/blogs/"+blog.ID, tokenFor(t, codec, "user-b"), nil)
	assert.Equal(t, http.StatusForbidden, intruder.Code)
	assert.Len(t, store.byID, 1)

	owner := request(router, http.MethodDelete, "/api/v1/blogs/"+blog.ID, tokenFor(t, codec, "user-a"), nil)
	assert.Equal(t, http.StatusOK, owner.Code)
	assert.Empty(t, store.byID)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	router, _, codec := newTestRouter(t)

	title := "edited"

	w := request(router, http.MethodPut, "/api/v1/blogs/nope", tokenFor(t, codec, "user-a"), blogs.UpdateBlogRequest{
		Title: &title,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlog_Public(t *testing.T) {
	router, _, codec := newTestRouter(t)

	created := request(router, http.MethodPost, "/api/v1/blogs", tokenFor(t, codec, "user-a"), blogs.CreateBlogRequest{
		Title:   "hello",
		Content: "world",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var blog blogs.Blog
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &blog))

	// no token needed for reads
	w := request(router, http.MethodGet, "/api/v1/blogs/"+blog.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
