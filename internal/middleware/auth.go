package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bilimly/bilimly-api/internal/models"
	"github.com/bilimly/bilimly-api/internal/security"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
	"github.com/bilimly/bilimly-api/pkg/response"
)

// ContextUserKey is the gin context key storing verified token claims.
const ContextUserKey = "currentUser"

// RequireAuth protects routes by requiring a valid bearer token.
func RequireAuth(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrNoToken)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrNoToken, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidToken.Code, appErrors.ErrInvalidToken.Status, appErrors.ErrInvalidToken.Message))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims stored by RequireAuth.
func ClaimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
