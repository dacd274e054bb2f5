// Package middleware holds the gin middleware of the HTTP API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/http/response"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Keys set on the gin context by RequireToken.
const (
	TokenKey    = "token"
	IdentityKey = "identity"
)

type AuthMiddleware struct {
	codec auth.Codec
}

func NewAuthMiddleware(codec auth.Codec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// RequireToken rejects requests without a decodable bearer token.
func (am *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "unauthorized", common.ErrInvalidToken)
			return
		}

		id, err := am.codec.Decode(token)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "invalid_token", err)
			return
		}

		c.Set(TokenKey, token)
		c.Set(IdentityKey, id)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Token returns the bearer token accepted by RequireToken.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}

// Identity returns the decoded token payload, or nil outside RequireToken.
func Identity(c *gin.Context) *models.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*models.Identity)
	return id
}
