package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connecta/identity-service/pkg/helpers"
	"github.com/connecta/identity-service/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxIdentityIDKey = "identityID"
	CtxEmailKey      = "identityEmail"
	CtxRoleKey       = "identityRole"
)

// Auth validates the bearer token from the Authorization header and
// injects subject, email and role into the Gin context. Expired tokens
// are reported distinctly from malformed or tampered ones.
func Auth(codec *helpers.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := codec.Validate(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "token expired"
			}
			response.AbortError(c, http.StatusUnauthorized, msg, nil)
			return
		}
		c.Set(CtxIdentityIDKey, claims.Subject)
		c.Set(CtxEmailKey, claims.Email)
		c.Set(CtxRoleKey, string(claims.Role))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
