package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected")
	protected.Use(Authenticate(tokens))
	protected.GET("", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})

	admin := r.Group("/admin")
	admin.Use(Authenticate(tokens), AdminOnly())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestAuthenticate(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	router := newAuthRouter(tokens)

	t.Run("valid bearer token passes and exposes the user ID", func(t *testing.T) {
		token, err := tokens.Generate("user-1", "a@b.c", "user")
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "user-1")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("non-bearer header is rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := services.NewTokenService("other-secret")
		token, err := other.Generate("user-1", "a@b.c", "user")
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	router := newAuthRouter(tokens)

	t.Run("admin role passes", func(t *testing.T) {
		token, err := tokens.Generate("admin-1", "admin@b.c", "admin")
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("user role is forbidden", func(t *testing.T) {
		token, err := tokens.Generate("user-1", "a@b.c", "user")
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
