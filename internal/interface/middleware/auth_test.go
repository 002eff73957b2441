package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/internal/interface/middleware"
	"github.com/connecta/identity-service/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(codec *helpers.TokenCodec) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Auth(codec), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(middleware.CtxIdentityIDKey),
			"email": c.GetString(middleware.CtxEmailKey),
			"role":  c.GetString(middleware.CtxRoleKey),
		})
	})
	return r
}

func testIdentity() *entity.Identity {
	return &entity.Identity{
		ID:          "7e4c2a1f-0000-0000-0000-000000000001",
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		ProfileKind: entity.ProfileMentor,
		Active:      true,
	}
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity")
	r := newAuthRouter(codec)

	token, _, err := codec.Issue(testIdentity())
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "7e4c2a1f-0000-0000-0000-000000000001", body["id"])
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, string(entity.RoleMentor), body["role"])
}

func TestAuthBearerCaseInsensitive(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity")
	r := newAuthRouter(codec)

	token, _, err := codec.Issue(testIdentity())
	require.NoError(t, err)

	w := doRequest(r, "bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMissingOrMalformedHeader(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity")
	r := newAuthRouter(codec)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "missing bearer token", "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	codec := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity")
	r := newAuthRouter(codec)

	// Signed with a different key.
	other := helpers.NewTokenCodec("other-secret", time.Hour, 30*time.Second, "connecta-identity")
	forged, _, err := other.Issue(testIdentity())
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged} {
		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token")
	}
}

func TestAuthExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	issuer := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity").
		WithClock(func() time.Time { return issuedAt })
	token, _, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	// Validation happens well past expiry plus leeway.
	validator := helpers.NewTokenCodec("test-secret", time.Hour, 30*time.Second, "connecta-identity").
		WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
	r := newAuthRouter(validator)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}
