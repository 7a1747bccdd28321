package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builds a router with one protected route that counts invocations and
// records the identity it observed
func protectedRouter(codec *Codec, calls *int, seen **Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", Middleware(codec), func(c *gin.Context) {
		*calls++

		claims, ok := Identity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}

		*seen = claims
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "email": claims.Email})
	})

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_NoHeader(t *testing.T) {
	codec := newTestCodec(t, testNow)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, calls, "handler must not run for rejected requests")
}

func TestMiddleware_EmptyBearerToken(t *testing.T) {
	codec := newTestCodec(t, testNow)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	w := doRequest(router, "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, calls)
}

func TestMiddleware_ValidBearerToken(t *testing.T) {
	codec := newTestCodec(t, testNow)

	token, err := codec.Encode("user-a", "a@x.com")
	require.NoError(t, err)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
	require.NotNil(t, seen)
	assert.Equal(t, "user-a", seen.UserID)
	assert.Equal(t, "a@x.com", seen.Email)
}

func TestMiddleware_BareTokenWithoutBearerPrefix(t *testing.T) {
	codec := newTestCodec(t, testNow)

	token, err := codec.Encode("user-a", "a@x.com")
	require.NoError(t, err)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	w := doRequest(router, token)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-a", seen.UserID)
}

func TestMiddleware_IdentityMatchesTokenSubject(t *testing.T) {
	codec := newTestCodec(t, testNow)

	tokenA, err := codec.Encode("user-a", "a@x.com")
	require.NoError(t, err)
	tokenB, err := codec.Encode("user-b", "b@x.com")
	require.NoError(t, err)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	doRequest(router, "Bearer "+tokenA)
	assert.Equal(t, "user-a", seen.UserID)

	doRequest(router, "Bearer "+tokenB)
	assert.Equal(t, "user-b", seen.UserID)
}

// expired tokens and garbage must be indistinguishable at the client
func TestMiddleware_ExpiredTokenMatchesGarbageResponse(t *testing.T) {
	issuer := newTestCodec(t, testNow.Add(-30*24*time.Hour))

	expired, err := issuer.Encode("user-a", "a@x.com")
	require.NoError(t, err)

	codec := newTestCodec(t, testNow)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	expiredResp := doRequest(router, "Bearer "+expired)
	garbageResp := doRequest(router, "Bearer not-even-a-token")

	assert.Equal(t, http.StatusUnauthorized, expiredResp.Code)
	assert.Equal(t, http.StatusUnauthorized, garbageResp.Code)
	assert.JSONEq(t, garbageResp.Body.String(), expiredResp.Body.String())
	assert.Equal(t, 0, calls)
}

func TestMiddleware_WrongSecretToken(t *testing.T) {
	other, err := NewCodecWithClock("some-other-secret", DefaultTokenTTL, fixedClock(testNow))
	require.NoError(t, err)

	forged, err := other.Encode("user-a", "a@x.com")
	require.NoError(t, err)

	codec := newTestCodec(t, testNow)

	calls := 0
	var seen *Claims
	router := protectedRouter(codec, &calls, &seen)

	w := doRequest(router, "Bearer "+forged)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, calls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["error"])
}

func TestUserID_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)
}
