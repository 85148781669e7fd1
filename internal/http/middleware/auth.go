package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the auth gate stores the verified
// caller identity under.
const IdentityKey = "identity"

// Auth is the bearer token gate. It extracts the token from the
// Authorization header, verifies it, and either injects the identity into
// the context or rejects the request with 401. Verification itself lives
// in service.ParseToken; this is only the HTTP adapter.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			AuthRejected.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		identity, err := service.ParseToken(token)
		if err != nil {
			AuthRejected.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}
