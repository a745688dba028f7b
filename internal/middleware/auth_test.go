package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crewhq/crewhq-backend/internal/auth/token"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func setupRouter(verifier *token.Manager, repo identity.Querier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := identity.NewService(repo, testLogger())

	r := gin.New()
	r.Use(AuthMiddleware(verifier, resolver, testLogger()))
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

// TestAuthMiddleware tests bearer token handling and identity resolution
func TestAuthMiddleware(t *testing.T) {
	verifier := token.NewManager("test-secret", time.Minute)

	t.Run("Missing header is rejected", func(t *testing.T) {
		r := setupRouter(verifier, new(identity.MockRepository))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token")
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		r := setupRouter(verifier, new(identity.MockRepository))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token")
	})

	t.Run("Expired token is rejected with its own code", func(t *testing.T) {
		expiredIssuer := token.NewManager("test-secret", -time.Minute)
		tokenStr, err := expiredIssuer.Generate(token.CreateTokenParams{Subject: "auth0|123"})
		assert.NoError(t, err)

		r := setupRouter(verifier, new(identity.MockRepository))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired_token")
	})

	t.Run("Valid token resolves and reaches the handler", func(t *testing.T) {
		tokenStr, err := verifier.Generate(token.CreateTokenParams{
			Subject: "auth0|123",
			Name:    "Jane Doe",
			Email:   "jane@example.com",
		})
		assert.NoError(t, err)

		repo := new(identity.MockRepository)
		repo.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(arg identity.UpsertProfileParams) bool {
			return arg.Subject == "auth0|123" && arg.DisplayName == "Jane Doe" && arg.NameMeaningful
		})).Return(identity.Profile{
			Subject:     "auth0|123",
			DisplayName: "Jane Doe",
			Handle:      "jane-doe",
		}, nil)

		gin.SetMode(gin.TestMode)
		resolver := identity.NewService(repo, testLogger())
		var captured *identity.Profile
		r := gin.New()
		r.Use(AuthMiddleware(verifier, resolver, testLogger()))
		r.GET("/probe", func(c *gin.Context) {
			captured = CurrentProfile(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, captured)
		assert.Equal(t, "auth0|123", captured.Subject)
		assert.Equal(t, "jane-doe", captured.Handle)
		repo.AssertExpectations(t)
	})

	t.Run("Store failure downgrades to claim values", func(t *testing.T) {
		tokenStr, err := verifier.Generate(token.CreateTokenParams{
			Subject: "auth0|123",
			Name:    "Jane Doe",
		})
		assert.NoError(t, err)

		repo := new(identity.MockRepository)
		repo.On("UpsertProfile", mock.Anything, mock.Anything).
			Return(identity.Profile{}, errors.New("connection refused"))

		gin.SetMode(gin.TestMode)
		resolver := identity.NewService(repo, testLogger())
		var captured *identity.Profile
		r := gin.New()
		r.Use(AuthMiddleware(verifier, resolver, testLogger()))
		r.GET("/probe", func(c *gin.Context) {
			captured = CurrentProfile(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		r.ServeHTTP(w, req)

		// The request still went through, attributed from the claims.
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "auth0|123", captured.Subject)
		assert.Equal(t, "Jane Doe", captured.DisplayName)
	})
}
