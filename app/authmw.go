package app

import (
	"context"
	"net/http"

	"dresshub/auth"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the signed session token, http-only, 7-day expiry.
const TokenCookie = "token"

// TokenChecker answers whether a token ID was revoked by logout.
type TokenChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthRequired verifies the token cookie and puts the caller's identity
// on the context for downstream handlers.
func AuthRequired(secret string, revoked TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "authentication required"})
			return
		}
		claims, err := auth.Parse(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid or expired token"})
			return
		}
		if revoked != nil {
			dead, err := revoked.IsRevoked(c.Request.Context(), claims.TokenID())
			if err == nil && dead {
				c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid or expired token"})
				return
			}
		}
		c.Set("userID", claims.UserID())
		c.Set("claims", claims)
		c.Next()
	}
}

// UserID pulls the authenticated caller's id set by AuthRequired.
func UserID(c *gin.Context) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	return id
}

// TokenClaims pulls the parsed claims set by AuthRequired, if any.
func TokenClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
