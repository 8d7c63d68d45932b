package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/usecase"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

const (
	identityKey     = "identity"
	sessionTokenKey = "sessionToken"
)

// SessionVerifier is the sole access-control choke point for protected
// routes. A missing or malformed Authorization header fails immediately
// without a directory call; otherwise the directory resolves the token and
// the identity is attached to the context.
func SessionVerifier(authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing bearer token",
			})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		ident, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(identityKey, ident)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// RequireAdmin gates the admin route group. Runs after SessionVerifier.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing bearer token",
			})
			return
		}
		if err := usecase.RequireAdmin(ident.Role); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity attached by SessionVerifier.
func IdentityFromContext(c *gin.Context) (*entity.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	ident, ok := v.(*entity.Identity)
	return ident, ok
}

// SessionTokenFromContext returns the raw bearer token for the request.
func SessionTokenFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(sessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
