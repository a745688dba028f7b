package middleware

import (
	"errors"
	"strings"

	"github.com/crewhq/crewhq-backend/internal/auth/token"
	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	jwtx "github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// profileContextKey is where the resolved profile lives on the gin context.
const profileContextKey = "profile"

// AuthMiddleware verifies the bearer token and resolves the caller's
// identity before any business handler runs. The identity upsert is
// best-effort: if the store write fails the request proceeds with values
// derived straight from the freshly verified claims, since failing to record
// presence is no reason to fail the business operation.
func AuthMiddleware(verifier *token.Manager, resolver *identity.Service, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apiErr := appErrors.ErrInvalidToken
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			apiErr := appErrors.ErrInvalidToken
			if errors.Is(err, jwtx.ErrTokenExpired) {
				apiErr = appErrors.ErrExpiredToken
			}
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}

		profile, err := resolver.ResolveAndPersist(c.Request.Context(), claims)
		if err != nil {
			logger.WithField("subject", claims.Subject).
				Warn("identity resolution failed, proceeding with claim values: ", err)
			profile = identity.FallbackProfile(claims)
		}

		// Populate context with the resolved identity
		c.Set(profileContextKey, profile)
		c.Set("subject", profile.Subject)
		c.Set("display_name", profile.DisplayName)
		c.Set("handle", profile.Handle)
		c.Set("email", profile.Email)
		c.Next()
	}
}

// CurrentProfile returns the resolved profile the auth middleware placed on
// the context. Only valid on routes behind AuthMiddleware.
func CurrentProfile(c *gin.Context) *identity.Profile {
	if v, ok := c.Get(profileContextKey); ok {
		if p, ok := v.(*identity.Profile); ok {
			return p
		}
	}
	// Routes behind the middleware always have a profile; this guards tests
	// that call handlers directly.
	return &identity.Profile{Subject: c.GetString("subject")}
}
