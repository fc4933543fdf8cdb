package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urbanbarber/api/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, issuer)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a token is present but lets
// anonymous requests through untouched.
func OptionalAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := bearerClaims(c, issuer)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func bearerClaims(c *gin.Context, issuer *token.Issuer) (*token.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := issuer.Parse(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

func setClaims(c *gin.Context, claims *token.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextUserRole, claims.Role)
}
