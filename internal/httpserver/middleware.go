package httpserver

import (
	"net/http"
	"strings"

	authsvc "bookstore/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// authMiddleware rejects requests without a valid bearer token and
// attaches the caller's identity for downstream handlers. A missing
// token is 401; a malformed, expired, or badly signed one is 403.
func authMiddleware(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		id, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

func callerIdentity(c *gin.Context) authsvc.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return authsvc.Identity{}
	}
	id, _ := v.(authsvc.Identity)
	return id
}
